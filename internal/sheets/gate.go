package sheets

import (
	"context"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// Sender posts one summary row upstream. Satisfied by *Client.
type Sender interface {
	Send(ctx context.Context, payload Payload) error
}

// Gate prevents the same record from being forwarded twice in one session.
// Sent fingerprints live only in process memory; a restart clears them,
// matching a page reload.
type Gate struct {
	sender Sender
	sent   *cache.Cache
	logger *zap.Logger
}

// NewGate creates a submission gate around the given sender.
func NewGate(sender Sender, logger *zap.Logger) *Gate {
	return &Gate{
		sender: sender,
		sent:   cache.New(cache.NoExpiration, 0),
		logger: logger,
	}
}

// Submit forwards the record's summary row unless its fingerprint was
// already sent. countAbsence is the post-filter absence count. The
// fingerprint is reserved atomically before the send and released again on
// failure, so concurrent duplicates cannot both reach the endpoint while a
// failed submission stays retryable.
func (g *Gate) Submit(ctx context.Context, record models.InspectionRecord, countAbsence int) error {
	fp := Fingerprint(record)
	if err := g.sent.Add(fp, true, cache.NoExpiration); err != nil {
		g.logger.Info("Duplicate submission blocked", zap.String("fingerprint", fp))
		return ErrAlreadySent
	}

	payload := Payload{
		Date:         record.Date,
		Time:         record.Time,
		Inspector:    record.InspectorName,
		Location:     record.Location,
		CountAbsence: countAbsence,
	}
	if err := g.sender.Send(ctx, payload); err != nil {
		g.sent.Delete(fp)
		return err
	}

	return nil
}

// WasSent reports whether the record's fingerprint is in the sent set.
func (g *Gate) WasSent(record models.InspectionRecord) bool {
	_, found := g.sent.Get(Fingerprint(record))
	return found
}
