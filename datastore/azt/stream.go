/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/storagemodels"
)

// Stream pages through the query results and emits projected items on a
// channel as they arrive, instead of materializing every page the way Query
// does. Like Query, streaming always targets the production table.
func (s *AzureTableStore[T]) Stream(ctx context.Context, reader datastore.Reader[T], params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go s.streamWorker(ctx, reader, params, options, resultCh)

	return resultCh
}

func (s *AzureTableStore[T]) streamWorker(
	ctx context.Context,
	reader datastore.Reader[T],
	params *storagemodels.QueryParams,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	client := s.client(resolveTarget(s.stage, s.dev != nil, opQuery))

	listOpts := listOptions(params)
	if options.PageSize > 0 {
		pageSize := options.PageSize
		listOpts.Top = &pageSize
	}

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()
	var accumulated []error

	reportProgress := func() {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: itemIndex,
			PagesProcessed: pageNumber,
			Errors:         accumulated,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(itemIndex) / elapsed
		}
		options.ProgressHandler(progress)
	}

	emit := func(res storagemodels.StreamResult[T]) bool {
		select {
		case resultCh <- res:
			return true
		case <-ctx.Done():
			return false
		}
	}

	// handleErr routes an item or page error through the caller's handler.
	// Returns false when streaming should stop.
	handleErr := func(err error) bool {
		accumulated = append(accumulated, err)
		if options.ErrorHandler != nil {
			return options.ErrorHandler(err)
		}
		return false
	}

	pager := client.NewListEntitiesPager(listOpts)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			// A failed page fetch ends the stream; retrying the same page
			// against a failing pager would spin.
			emit(storagemodels.StreamResult[T]{Error: fmt.Errorf("stream page error: %w", err)})
			handleErr(err)
			return
		}
		pageNumber++

		for _, raw := range page.Entities {
			var ent storagemodels.Entity
			if err := json.Unmarshal(raw, &ent); err != nil {
				if !emit(storagemodels.StreamResult[T]{Error: err}) || !handleErr(err) {
					return
				}
				continue
			}

			item, err := project(&ent, reader)
			res := storagemodels.StreamResult[T]{
				Item:  item,
				Raw:   &ent,
				Error: err,
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			if !emit(res) {
				return
			}
			if err != nil && !handleErr(err) {
				return
			}
			itemIndex++
		}

		reportProgress()
	}
}
