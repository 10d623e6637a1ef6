package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"textkit/internal/comments"
	pkgerrors "textkit/pkg/errors"
	"textkit/pkg/jsonclient"
)

func newCommentsCommand() *cobra.Command {
	var (
		url       string
		localPath string
		field     string
		value     string
		overField string
		threshold float64
		sortField string
		desc      bool
		limit     int
		preview   bool
		enrich    bool
		postInfo  bool
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Fetch, filter, and render comment records",
		Long: `comments downloads a JSON comment feed and renders it as a bordered
table. Records can be filtered by field, sorted, enriched with synthetic
post metadata, and previewed with truncated names and bodies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadComments(cmd, localPath, url)
			if err != nil {
				return err
			}

			if field != "" {
				set, err = set.ByField(field, value)
				if err != nil {
					return err
				}
			}
			if overField != "" {
				set, err = set.OverField(overField, threshold)
				if err != nil {
					return err
				}
			}
			if sortField != "" {
				set, err = set.SortedBy(sortField, desc)
				if err != nil {
					return err
				}
			}
			set = set.Limit(limit)
			if enrich {
				set = set.Enrich(rand.New(rand.NewSource(seed)))
			}
			if set.Len() == 0 {
				color.Yellow("no comments matched")
			}

			out, err := set.Render(comments.RenderOptions{
				BodyWrapWidth:  cfg.Comments.BodyWrapWidth,
				Preview:        preview,
				PreviewNameLen: cfg.Comments.PreviewNameLen,
				PreviewBodyLen: cfg.Comments.PreviewBodyLen,
				ShowPostInfo:   enrich || postInfo,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "comment feed URL (defaults to the configured endpoint)")
	cmd.Flags().StringVar(&localPath, "file", "", "local JSON file instead of fetching")
	cmd.Flags().StringVar(&field, "field", "", "filter field (id, postId, name, email, body, post_info)")
	cmd.Flags().StringVar(&value, "value", "", "filter value for --field")
	cmd.Flags().StringVar(&overField, "over", "", "numeric field for a strictly-greater filter")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "threshold for --over")
	cmd.Flags().StringVar(&sortField, "sort", "", "sort by id, postId, name, or email")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&limit, "limit", -1, "maximum number of comments to show")
	cmd.Flags().BoolVar(&preview, "preview", false, "truncate names and bodies instead of wrapping")
	cmd.Flags().BoolVar(&enrich, "enrich", false, "attach random post metadata and show the column")
	cmd.Flags().BoolVar(&postInfo, "post-info", false, "show the post info column")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for --enrich")
	return cmd
}

func loadComments(cmd *cobra.Command, localPath, url string) (comments.Set, error) {
	if localPath != "" {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return comments.Set{}, pkgerrors.Newf(pkgerrors.ErrIO, "reading %s: %v", localPath, err)
		}
		return comments.FromJSON(data)
	}
	if url == "" {
		url = cfg.Comments.URL
	}
	client := jsonclient.New(cfg.HTTP.Timeout)
	return comments.Fetch(cmd.Context(), client, url)
}
