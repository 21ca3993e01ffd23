package adapter

import (
	"context"
	"reflect"

	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

// runPaged executes a marker based list operation. A bound marker or
// NoAutoIteration fetches one page and surfaces the next marker. Otherwise
// pages are drained until the service stops returning a marker or the
// MaxItems ceiling is reached.
func (op *Operation[In, Out]) runPaged(ctx context.Context, r *Runner, api rdsapi.API, req *In, inv *Invocation) Envelope {
	pg := op.Paging
	settings := inv.Settings()

	markerParam, _ := op.paramForField(pg.InputMarker)
	stepping := settings.NoAutoIteration || inv.Has(markerParam.Name)

	sizeBound := false
	if pg.PageSize != "" {
		if p, ok := op.paramForField(pg.PageSize); ok && inv.Has(p.Name) {
			sizeBound = true
		}
	}

	var (
		items   any
		last    *Out
		emitted int
		pages   int
		next    string
		prev    string
	)

	for {
		if err := ctx.Err(); err != nil {
			return errorEnvelope(op.Name, err)
		}

		pageReq := *req
		root := reflect.ValueOf(&pageReq).Elem()
		if pages > 0 {
			if err := setField(root, pg.InputMarker, next); err != nil {
				return errorEnvelope(op.Name, internalError(op.Name, err))
			}
		}
		if settings.MaxItems > 0 && pg.PageSize != "" && !sizeBound {
			size := clampPageSize(settings.MaxItems-emitted, pg.MinPageSize, pg.MaxPageSize)
			if err := setField(root, pg.PageSize, size); err != nil {
				return errorEnvelope(op.Name, internalError(op.Name, err))
			}
		}

		resp, err := op.Call(api, ctx, &pageReq)
		if err != nil {
			return errorEnvelope(op.Name, enrich(op.Name, err, r.clients.Diagnostics()))
		}
		last = resp
		pages++

		pageItems, err := selectField(resp, op.Select)
		if err != nil {
			return errorEnvelope(op.Name, internalError(op.Name, err))
		}
		count := itemCount(pageItems)
		emitted += count
		items = appendItems(items, pageItems)

		prev, next = next, stringField(resp, pg.OutputMarker)

		r.recorder.RecordPage(op.Name, count)
		if r.observer != nil {
			r.observer.OnPage(Page{
				Operation:  op.Name,
				Index:      pages,
				Count:      count,
				NextMarker: next,
				Items:      pageItems,
			})
		}

		if next == "" || stepping {
			break
		}
		if settings.MaxItems > 0 && emitted >= settings.MaxItems {
			r.logger.Debug("item ceiling reached",
				"operation", op.Name,
				"max_items", settings.MaxItems,
				"emitted", emitted)
			break
		}
		if pages > 1 && next == prev {
			r.logger.Warn("service returned the same marker twice, stopping",
				"operation", op.Name,
				"marker", next)
			break
		}
	}

	env := resultEnvelope(op.Name, items, last, requestIDOf(last))
	env.NextMarker = next
	env.Pages = pages
	return env
}

func clampPageSize(remaining int, minSize, maxSize int32) int32 {
	size := maxSize
	if remaining < int(maxSize) {
		size = int32(remaining)
	}
	if size < minSize {
		size = minSize
	}
	return size
}
