// ABOUTME: Copies the top comment and comment count of a payload into content item metadata
// ABOUTME: Saves only when a value changed so repeated polls of a settled thread write nothing
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"discussion-fetcher/domain"
	"discussion-fetcher/repository"
)

var botAuthors = map[string]struct{}{
	"automoderator": {},
	"[deleted]":     {},
	"[removed]":     {},
}

var botSuffixesFold = []string{"_bot", "-bot"}

type metadataDenormalizer struct {
	contentRepo repository.ContentItemRepository
	logger      *slog.Logger
}

func NewMetadataDenormalizer(contentRepo repository.ContentItemRepository, logger *slog.Logger) MetadataDenormalizer {
	return &metadataDenormalizer{contentRepo: contentRepo, logger: logger}
}

func (d *metadataDenormalizer) Apply(ctx context.Context, item *domain.ContentItem, payload *domain.DiscussionPayload) (bool, error) {
	if item == nil || payload == nil {
		return false, nil
	}

	metadata := item.CloneMetadata()
	changed := false

	if top := selectTopComment(payload.Comments); top == nil {
		if _, ok := metadata[domain.MetadataTopComment]; ok {
			delete(metadata, domain.MetadataTopComment)
			changed = true
		}
	} else if !sameTopComment(metadata[domain.MetadataTopComment], top) {
		metadata[domain.MetadataTopComment] = top
		changed = true
	}

	if count, ok := commentCount(payload); !ok {
		if _, present := metadata[domain.MetadataCommentCount]; present {
			delete(metadata, domain.MetadataCommentCount)
			changed = true
		}
	} else if current, isNum := numberValue(metadata[domain.MetadataCommentCount]); !isNum || current != count {
		metadata[domain.MetadataCommentCount] = count
		changed = true
	}

	if !changed {
		d.logger.DebugContext(ctx, "content item metadata unchanged", "content_id", item.ID)
		return false, nil
	}

	if err := d.contentRepo.SaveMetadata(ctx, item.ID, metadata); err != nil {
		return false, fmt.Errorf("save denormalized metadata: %w", err)
	}
	item.Metadata = metadata
	return true, nil
}

// selectTopComment picks the first comment not written by a bot and with text.
func selectTopComment(comments []domain.Comment) map[string]any {
	for _, c := range comments {
		if isBotAuthor(c.Author) {
			continue
		}
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		return map[string]any{"author": c.Author, "text": c.Text}
	}
	return nil
}

func isBotAuthor(author string) bool {
	name := strings.TrimSpace(author)
	lower := strings.ToLower(name)
	if _, ok := botAuthors[lower]; ok {
		return true
	}
	for _, suffix := range botSuffixesFold {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return strings.HasSuffix(name, "Bot")
}

func sameTopComment(current any, next map[string]any) bool {
	m, ok := current.(map[string]any)
	if !ok {
		return false
	}
	author, _ := m["author"].(string)
	text, _ := m["text"].(string)
	return author == next["author"] && text == next["text"]
}

// commentCount follows the payload mode: declared total for threads, synthesized
// count for link lists, nothing otherwise.
func commentCount(payload *domain.DiscussionPayload) (int, bool) {
	switch payload.Mode {
	case domain.ModeComments:
		if payload.Stats.DeclaredCommentCount == nil {
			return 0, false
		}
		return *payload.Stats.DeclaredCommentCount, true
	case domain.ModeDiscussionList:
		if len(payload.Comments) == 0 {
			return 0, false
		}
		return len(payload.Comments), true
	default:
		return 0, false
	}
}

// numberValue reads ints stored in-process and float64s decoded from JSONB.
func numberValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
