// Package workers runs the long-lived loops of the tag simulator.
package workers

import "context"

// Worker runs until its work is done or ctx is canceled.
type Worker interface {
	Run(ctx context.Context) error
}
