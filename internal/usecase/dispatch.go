package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"appraisal_desk/internal/usecase/interfaces"
)

// Dispatcher fans notification emails out over SMTP with bounded
// parallelism. Per-recipient failures are captured in the result set rather
// than aborting the batch.

const (
	DeliveryStatusSent    = "sent"
	DeliveryStatusFailed  = "failed"
	DeliveryStatusSkipped = "skipped"
	DeliveryStatusDryRun  = "dry_run"
)

// Message is one outbound email addressed to a named recipient.
type Message struct {
	RecipientID   string
	RecipientName string
	To            string
	Subject       string
	Body          string
}

// DeliveryResult reports the outcome for a single message. Subject and Body
// are echoed back so dry runs can show what would have gone out.
type DeliveryResult struct {
	RecipientID   string `json:"recipient_id,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
	To            string `json:"to,omitempty"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	Error         string `json:"error,omitempty"`
	Subject       string `json:"subject,omitempty"`
	Body          string `json:"body,omitempty"`
}

type Dispatcher struct {
	sender      interfaces.IMailSender
	maxParallel int
}

func NewDispatcher(sender interfaces.IMailSender, maxParallel int) *Dispatcher {
	if maxParallel <= 0 {
		maxParallel = 1
	}
	return &Dispatcher{sender: sender, maxParallel: maxParallel}
}

// Dispatch sends every message and returns one result per input, in input
// order. Messages without an address are skipped. When dryRun is set nothing
// is sent and every deliverable message reports dry_run with its rendered
// subject and body.
func (d *Dispatcher) Dispatch(ctx context.Context, msgs []Message, dryRun bool) []DeliveryResult {
	batchID := uuid.NewString()
	results := make([]DeliveryResult, len(msgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.maxParallel)

	for i, msg := range msgs {
		if msg.To == "" {
			results[i] = DeliveryResult{
				RecipientID:   msg.RecipientID,
				RecipientName: msg.RecipientName,
				Status:        DeliveryStatusSkipped,
				Reason:        "no email address on file",
			}
			log.Printf("[notify][dispatch] skipped recipient batch_id=%s recipient_id=%s reason=no_email", batchID, msg.RecipientID)
			continue
		}

		if dryRun {
			results[i] = DeliveryResult{
				RecipientID:   msg.RecipientID,
				RecipientName: msg.RecipientName,
				To:            msg.To,
				Status:        DeliveryStatusDryRun,
				Subject:       msg.Subject,
				Body:          msg.Body,
			}
			continue
		}

		i, msg := i, msg
		g.Go(func() error {
			res := DeliveryResult{
				RecipientID:   msg.RecipientID,
				RecipientName: msg.RecipientName,
				To:            msg.To,
				Status:        DeliveryStatusSent,
				Subject:       msg.Subject,
			}
			if err := d.sender.Send(gctx, msg.To, msg.Subject, msg.Body); err != nil {
				res.Status = DeliveryStatusFailed
				res.Error = err.Error()
				log.Printf("[notify][dispatch] send failed batch_id=%s recipient_id=%s to=%s err=%v",
					batchID, msg.RecipientID, msg.To, err)
			}
			results[i] = res
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes the batch.
	_ = g.Wait()

	log.Printf("[notify][dispatch] batch done batch_id=%s total=%d dry_run=%t", batchID, len(msgs), dryRun)
	return results
}

// SentCount counts results that actually went out.
func SentCount(results []DeliveryResult) int {
	n := 0
	for _, r := range results {
		if r.Status == DeliveryStatusSent {
			n++
		}
	}
	return n
}
