// Package llm talks to the vision/assessor gateway over gRPC and
// exposes typed calls for each analysis task. Prompt construction,
// retry, and JSON extraction all live here so callers only see
// domain structs.
package llm

import (
	"context"
	"fmt"

	loupev1 "github.com/loupe-hq/loupe/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Task labels for gateway routing. These match the task field the
// gateway uses to pick a model and prompt budget.
const (
	TaskPageAudit            = "page_audit"
	TaskQuickDiff            = "quick_diff"
	TaskPostAnalysis         = "post_analysis"
	TaskCheckpointAssessment = "checkpoint_assessment"
	TaskStrategyNarrative    = "strategy_narrative"
)

// Request is a single completion call to the gateway.
type Request struct {
	Task         string
	SystemPrompt string
	UserPrompt   string
	ImageURLs    []string
	MaxTokens    int
	// ReferenceID correlates the call with an analysis or change id in
	// gateway traces.
	ReferenceID string
}

// Response is the gateway's completion result.
type Response struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Client is the engine's view of the gateway. Satisfied by GRPCClient
// in production and by fakes in tests.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Close() error
}

// GRPCClient implements Client by calling the gateway service via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client loupev1.LLMServiceClient
}

// NewGRPCClient creates a new gRPC gateway client.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM gateway at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: loupev1.NewLLMServiceClient(conn),
	}, nil
}

// Complete sends one completion request and waits for the full result.
func (c *GRPCClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.client.Complete(ctx, &loupev1.CompleteRequest{
		Task:         req.Task,
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
		ImageUrls:    req.ImageURLs,
		MaxTokens:    int32(req.MaxTokens),
		ReferenceId:  req.ReferenceID,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC Complete call failed: %w", err)
	}
	return &Response{
		Text:         resp.Text,
		Model:        resp.Model,
		InputTokens:  int(resp.InputTokens),
		OutputTokens: int(resp.OutputTokens),
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
