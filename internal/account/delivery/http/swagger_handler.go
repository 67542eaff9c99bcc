package http

// CreateUser godoc
// @Summary Register a user
// @Description Creates a USER account; username and email must be unused
// @Tags Account
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Registration"
// @Success 201 {object} object{success=bool,message=string,redirect=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /user [post]
func (h *AccountHandler) CreateUserDoc() {}

// CreateSession godoc
// @Summary Log in
// @Description Identifier may be a username or an email. Sets the session cookie.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Credentials"
// @Success 200 {object} object{success=bool,message=string,data=object,redirect=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 429 {object} object{success=bool,error=string}
// @Router /session [post]
func (h *AccountHandler) CreateSessionDoc() {}

// GetSession godoc
// @Summary Current user
// @Tags Account
// @Security SessionCookie
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /session [get]
func (h *AccountHandler) GetSessionDoc() {}

// DeleteSession godoc
// @Summary Log out
// @Tags Account
// @Produce json
// @Success 200 {object} object{success=bool,message=string,redirect=string}
// @Router /session [delete]
func (h *AccountHandler) DeleteSessionDoc() {}
