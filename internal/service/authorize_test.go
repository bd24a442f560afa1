package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/easyrokra/gateway/internal/service"
)

func TestSimulatedAuthorizerReturnsReference(t *testing.T) {
	a := &service.SimulatedAuthorizer{}

	auth, err := a.Authorize(context.Background(), "7001")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if auth.Reference == "" {
		t.Error("expected a transaction reference")
	}
	if auth.AuthorizedAt.IsZero() {
		t.Error("expected an authorization timestamp")
	}
}

func TestSimulatedAuthorizerDistinctReferences(t *testing.T) {
	a := &service.SimulatedAuthorizer{}

	first, _ := a.Authorize(context.Background(), "7001")
	second, _ := a.Authorize(context.Background(), "7001")
	if first.Reference == second.Reference {
		t.Error("references must be unique per authorization")
	}
}

func TestSimulatedAuthorizerHonorsCancellation(t *testing.T) {
	a := &service.SimulatedAuthorizer{Delay: time.Minute}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := a.Authorize(ctx, "7001"); err == nil {
		t.Fatal("expected cancellation error")
	}
}
