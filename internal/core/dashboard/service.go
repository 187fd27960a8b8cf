// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dashboard aggregates catalogue statistics for the landing screen.
package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/skumaster/internal/core/product"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/internal/platform/ctxutil"
)

// RecentLimit is the number of products listed on the dashboard.
const RecentLimit = 5

// VocabularyCounter reports row counts per vocabulary.
type VocabularyCounter interface {
	Counts(context context.Context) (map[vocabulary.Kind]int, error)
}

// TokenCounter reports the size of the mapping table.
type TokenCounter interface {
	Count(context context.Context) (int, error)
}

// ProductReader reports product totals and the newest products.
type ProductReader interface {
	Count(context context.Context) (int, error)
	Recent(context context.Context, limit int) ([]*product.Details, error)
}

// Summary is the dashboard payload.
type Summary struct {
	Vocabularies   map[string]int     `json:"vocabularies"`
	MappingTokens  int                `json:"mapping_tokens"`
	Products       int                `json:"products"`
	RecentProducts []*product.Details `json:"recent_products"`
}

// Service builds the dashboard [Summary].
type Service struct {
	vocabularies VocabularyCounter
	tokens       TokenCounter
	products     ProductReader
	logger       *slog.Logger
}

// NewService constructs a new dashboard [Service].
func NewService(vocabularies VocabularyCounter, tokens TokenCounter, products ProductReader, logger *slog.Logger) *Service {
	return &Service{vocabularies: vocabularies, tokens: tokens, products: products, logger: logger}
}

/*
Summary gathers every statistic concurrently.

Parameters:
  - context: context.Context

Returns:
  - *Summary: Counts and the most recent products
  - error: The first failing lookup aborts the whole summary
*/
func (service *Service) Summary(context context.Context) (*Summary, error) {
	var (
		counts  map[vocabulary.Kind]int
		summary Summary
	)

	group, groupContext := errgroup.WithContext(context)

	group.Go(func() (err error) {
		counts, err = service.vocabularies.Counts(groupContext)
		return err
	})
	group.Go(func() (err error) {
		summary.MappingTokens, err = service.tokens.Count(groupContext)
		return err
	})
	group.Go(func() (err error) {
		summary.Products, err = service.products.Count(groupContext)
		return err
	})
	group.Go(func() (err error) {
		summary.RecentProducts, err = service.products.Recent(groupContext, RecentLimit)
		return err
	})

	if err := group.Wait(); err != nil {
		ctxutil.GetLogger(context, service.logger).ErrorContext(context, "dashboard_summary_failed", slog.Any("error", err))
		return nil, err
	}

	summary.Vocabularies = make(map[string]int, len(vocabulary.Kinds))
	for _, kind := range vocabulary.Kinds {
		summary.Vocabularies[kind.String()] = counts[kind]
	}
	if summary.RecentProducts == nil {
		summary.RecentProducts = []*product.Details{}
	}

	return &summary, nil
}
