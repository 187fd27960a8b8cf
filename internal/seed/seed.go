// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads the sample catalogue into an empty database.

The bootstrap runs at startup. A Redis lock keeps concurrent instances from
seeding twice, and the run is skipped entirely once any vocabulary holds a row.
*/
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/skumaster/internal/core/mapping"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/internal/platform/constants"
	redisstore "github.com/taibuivan/skumaster/internal/platform/redis"
	"github.com/taibuivan/skumaster/pkg/pointer"
)

// lockTTL bounds how long a crashed seeder can block the others.
const lockTTL = 2 * time.Minute

// Locker is satisfied by [redisstore.Locker].
type Locker interface {
	Acquire(context context.Context, key string, ttl time.Duration) (func(context.Context) error, error)
}

// Vocabularies creates and counts vocabulary rows. It is satisfied by [vocabulary.Service].
type Vocabularies interface {
	Counts(context context.Context) (map[vocabulary.Kind]int, error)
	Create(context context.Context, kind vocabulary.Kind, input vocabulary.Input) (*vocabulary.Attribute, error)
}

// Tokens creates mapping tokens. It is satisfied by [mapping.Service].
type Tokens interface {
	Create(context context.Context, input mapping.Input) (*mapping.Token, error)
}

// Seeder bootstraps the sample catalogue.
type Seeder struct {
	locker       Locker
	vocabularies Vocabularies
	tokens       Tokens
	logger       *slog.Logger
}

// NewSeeder constructs a [Seeder]. A nil locker runs without cross-instance coordination.
func NewSeeder(locker Locker, vocabularies Vocabularies, tokens Tokens, logger *slog.Logger) *Seeder {
	return &Seeder{locker: locker, vocabularies: vocabularies, tokens: tokens, logger: logger}
}

/*
Run seeds the sample data unless another instance holds the lock or the
vocabularies are already populated.

Parameters:
  - context: context.Context

Returns:
  - error: Lock, count or creation failures. Skipped runs return nil.
*/
func (seeder *Seeder) Run(context context.Context) error {
	if seeder.locker != nil {
		release, err := seeder.locker.Acquire(context, constants.RedisKeySeedLock, lockTTL)
		if errors.Is(err, redisstore.ErrLockHeld) {
			seeder.logger.InfoContext(context, "seed_skipped", slog.String("reason", "lock_held"))
			return nil
		}
		if err != nil {
			return err
		}
		defer func() {
			if err := release(context); err != nil {
				seeder.logger.WarnContext(context, "seed_lock_release_failed", slog.Any("error", err))
			}
		}()
	}

	counts, err := seeder.vocabularies.Counts(context)
	if err != nil {
		return err
	}
	for _, total := range counts {
		if total > 0 {
			seeder.logger.InfoContext(context, "seed_skipped", slog.String("reason", "data_exists"))
			return nil
		}
	}

	rows, tokens := 0, 0
	for _, kind := range vocabulary.Kinds {
		for _, sample := range sampleRows[kind] {
			if _, err := seeder.vocabularies.Create(context, kind, sample.input()); err != nil {
				return fmt.Errorf("seed %s %s: %w", kind, sample.Code, err)
			}
			rows++
		}
	}

	for index, input := range tokenInputs() {
		input.NumericCode = index + 1
		if _, err := seeder.tokens.Create(context, input); err != nil {
			return fmt.Errorf("seed token %s: %w", input.Token, err)
		}
		tokens++
	}

	seeder.logger.InfoContext(context, "seed_completed",
		slog.Int("vocabulary_rows", rows),
		slog.Int("mapping_tokens", tokens),
	)
	return nil
}

func (sample row) input() vocabulary.Input {
	input := vocabulary.Input{
		Code:   sample.Code,
		NameAr: sample.NameAr,
		NameEn: pointer.To(sample.NameEn),
	}
	if sample.Hex != "" {
		input.HexValue = pointer.To(sample.Hex)
	}
	return input
}

// tokenInputs lists the mapping tokens in SKU order, with the design numbers after the types.
func tokenInputs() []mapping.Input {
	var inputs []mapping.Input
	for _, kind := range vocabulary.Kinds {
		for _, sample := range sampleRows[kind] {
			description := sample.NameEn
			if sample.TokenEn != "" {
				description = sample.TokenEn
			}
			inputs = append(inputs, mapping.Input{
				Token:         sample.Code,
				DescriptionAr: sample.NameAr,
				DescriptionEn: pointer.To(description),
			})
		}

		if kind == vocabulary.KindType {
			for _, design := range designs {
				inputs = append(inputs, mapping.Input{
					Token:         design,
					DescriptionAr: "تصميم " + design,
					DescriptionEn: pointer.To("Design " + design),
				})
			}
		}
	}
	return inputs
}
