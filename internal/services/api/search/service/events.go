package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"joblens/internal/platform/logger"
	"joblens/internal/services/api/search/domain"
)

// eventTable is the append-only clickhouse sink for search traffic
const eventTable = "search_events"

// emitEvent records one search into the event sink asynchronously
// the write runs on a detached context so a slow sink cannot stall or
// outlive-cancel the request, failures are logged and dropped
func (s *Svc) emitEvent(endpoint string, q domain.SearchQuery, total int64, elapsed time.Duration, slow bool) {
	if s.events == nil {
		return
	}

	row := []any{
		uuid.New(),
		time.Now().UTC(),
		endpoint,
		q.CacheKey(),
		q.Term,
		total,
		elapsed.Milliseconds(),
		boolToUint8(slow),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.events.Insert(ctx, eventTable, [][]any{row}); err != nil {
			logger.Named("search").Warn().Err(err).Msg("search event insert failed")
		}
	}()
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
