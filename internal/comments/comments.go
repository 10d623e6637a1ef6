// Package comments models downloaded comment records: fetching from a JSON
// endpoint, filtering, sorting, random enrichment, and a wrapped-column table
// renderer. Operations return new Sets; the receiver is never mutated.
package comments

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	pkgerrors "textkit/pkg/errors"
	"textkit/pkg/jsonclient"
	"textkit/pkg/logger"
)

// Comment is one record from the comments endpoint. PostInfo is empty until
// the set is enriched.
type Comment struct {
	PostID   int    `json:"postId"`
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Body     string `json:"body"`
	PostInfo string `json:"post_info,omitempty"`
}

// Set is an ordered, immutable collection of comments.
type Set struct {
	comments []Comment
	logger   *slog.Logger
}

// NewSet copies the given comments into a set, preserving order.
func NewSet(comments []Comment) Set {
	copied := make([]Comment, len(comments))
	copy(copied, comments)
	return Set{
		comments: copied,
		logger:   logger.WithComponent("comments"),
	}
}

// FromJSON decodes a JSON array of comment records.
func FromJSON(data []byte) (Set, error) {
	var comments []Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return Set{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "decoding comments: %v", err)
	}
	return NewSet(comments), nil
}

// Fetch downloads the comment records at url.
func Fetch(ctx context.Context, client *jsonclient.Client, url string) (Set, error) {
	var comments []Comment
	if err := client.FetchInto(ctx, url, &comments); err != nil {
		return Set{}, err
	}
	set := NewSet(comments)
	set.logger.Info("fetched comments", "url", url, "count", set.Len())
	return set, nil
}

// Comments returns a copy of the set contents in order.
func (s Set) Comments() []Comment {
	out := make([]Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// Len returns the number of comments.
func (s Set) Len() int {
	return len(s.comments)
}

// canonical field names accepted by ByField, OverField, and SortedBy.
const (
	fieldID       = "id"
	fieldPostID   = "postid"
	fieldName     = "name"
	fieldEmail    = "email"
	fieldBody     = "body"
	fieldPostInfo = "post_info"
)

func canonicalField(field string) string {
	f := strings.ToLower(strings.TrimSpace(field))
	switch f {
	case "post id", "post_id":
		return fieldPostID
	case "postinfo", "post info":
		return fieldPostInfo
	}
	return f
}

// ByField keeps comments matching value on the named field. String fields
// match by case-insensitive substring; numeric fields by equality. The empty
// result is a valid outcome, not an error.
func (s Set) ByField(field, value string) (Set, error) {
	switch canonicalField(field) {
	case fieldID, fieldPostID:
		n, err := strconv.Atoi(value)
		if err != nil {
			return Set{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
				"field %q needs a numeric value, got %q", field, value)
		}
		if canonicalField(field) == fieldID {
			return s.filter(func(c Comment) bool { return c.ID == n }), nil
		}
		return s.filter(func(c Comment) bool { return c.PostID == n }), nil
	case fieldName:
		return s.filterContains(value, func(c Comment) string { return c.Name }), nil
	case fieldEmail:
		return s.filterContains(value, func(c Comment) string { return c.Email }), nil
	case fieldBody:
		return s.filterContains(value, func(c Comment) string { return c.Body }), nil
	case fieldPostInfo:
		return s.filterContains(value, func(c Comment) string { return c.PostInfo }), nil
	default:
		return Set{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"unknown field %q: valid fields are id, postId, name, email, body, post_info", field)
	}
}

// OverField keeps comments whose numeric field is strictly greater than
// threshold. Only id and postId are numeric.
func (s Set) OverField(field string, threshold float64) (Set, error) {
	switch canonicalField(field) {
	case fieldID:
		return s.filter(func(c Comment) bool { return float64(c.ID) > threshold }), nil
	case fieldPostID:
		return s.filter(func(c Comment) bool { return float64(c.PostID) > threshold }), nil
	default:
		return Set{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"field %q is not numeric: valid fields are id, postId", field)
	}
}

// SortedBy returns the set ordered by the named field, descending when desc
// is set. Bodies are free text and not sortable.
func (s Set) SortedBy(field string, desc bool) (Set, error) {
	var less func(a, b Comment) bool
	switch canonicalField(field) {
	case fieldID:
		less = func(a, b Comment) bool { return a.ID < b.ID }
	case fieldPostID:
		less = func(a, b Comment) bool { return a.PostID < b.PostID }
	case fieldName:
		less = func(a, b Comment) bool { return a.Name < b.Name }
	case fieldEmail:
		less = func(a, b Comment) bool { return a.Email < b.Email }
	default:
		return Set{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"cannot sort by %q: valid fields are id, postId, name, email", field)
	}

	sorted := s.Comments()
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return NewSet(sorted), nil
}

// Limit returns at most n comments from the front of the set. Negative n
// means no limit.
func (s Set) Limit(n int) Set {
	if n < 0 || n >= len(s.comments) {
		return NewSet(s.comments)
	}
	return NewSet(s.comments[:n])
}

func (s Set) filter(keep func(Comment) bool) Set {
	filtered := make([]Comment, 0, len(s.comments))
	for _, c := range s.comments {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}
	return NewSet(filtered)
}

func (s Set) filterContains(substr string, get func(Comment) string) Set {
	needle := strings.ToLower(substr)
	return s.filter(func(c Comment) bool {
		return strings.Contains(strings.ToLower(get(c)), needle)
	})
}
