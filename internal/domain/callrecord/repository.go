package callrecord

import "context"

// Repository appends call records and reads them back. Rows are never updated or deleted.
type Repository interface {
	Insert(ctx context.Context, record *CallRecord) error
	// List returns userID's records newest first, narrowed to agentID when it is not empty.
	List(ctx context.Context, userID, agentID string) ([]*CallRecord, error)
}
