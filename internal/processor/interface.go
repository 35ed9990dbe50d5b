package processor

import "context"

// Processor defines the interface for summarizing one inbox document
type Processor interface {
	Process(ctx context.Context, docPath string) error
}
