package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Handler struct {
	lister BucketLister
	logger *log.Logger
}

func NewHandler() (*Handler, error) {
	config, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	sess, err := session.NewSession(config.AWSConfig())
	if err != nil {
		return nil, fmt.Errorf("error creating aws session: %v", err)
	}

	return &Handler{
		lister: NewS3BucketLister(s3.New(sess)),
		logger: log.Default(),
	}, nil
}

func (h *Handler) logf(ctx context.Context, format string, v ...interface{}) {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		format = lc.AwsRequestID + " " + format
	}
	h.logger.Printf(format, v...)
}

// HandleLambdaEvent lists the buckets visible to the function's role. The
// returned error is always nil: failures are reported as a 500 Response.
func (h *Handler) HandleLambdaEvent(ctx context.Context, event json.RawMessage) (Response, error) {
	indented, err := IndentEvent(event)
	if err != nil {
		return h.errorResponse(ctx, err), nil
	}
	h.logf(ctx, "received event: %s", indented)

	names, err := h.lister.ListBucketNames(ctx)
	if err != nil {
		return h.errorResponse(ctx, err), nil
	}
	h.logf(ctx, "retrieved %d buckets", len(names))

	return NewSuccessResponse(names), nil
}

func (h *Handler) errorResponse(ctx context.Context, err error) Response {
	message := fmt.Sprintf("Error listing buckets: %s", err.Error())
	h.logf(ctx, "%s", message)

	return NewErrorResponse(message)
}
