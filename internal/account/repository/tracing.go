package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/pkg/apperror"
)

var tracer = otel.Tracer("account-repository")

// TracingUserRepository wraps a UserRepository with spans
type TracingUserRepository struct {
	next domain.UserRepository
}

// NewTracingUserRepository creates a new repository with tracing
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{next: next}
}

func (r *TracingUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.String("user.username", user.Username)),
	)
	defer span.End()

	if err := r.next.Create(ctx, user); err != nil {
		record(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return nil
}

func (r *TracingUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	user, err := r.next.FindByID(ctx, id)
	record(span, err)
	return user, err
}

func (r *TracingUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUsername",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	user, err := r.next.FindByUsername(ctx, username)
	record(span, err)
	return user, err
}

func (r *TracingUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByEmail")
	defer span.End()

	user, err := r.next.FindByEmail(ctx, email)
	record(span, err)
	return user, err
}

// record marks the span failed for anything but a plain miss
func record(span trace.Span, err error) {
	if err == nil || apperror.KindOf(err) == apperror.KindNotFound {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
