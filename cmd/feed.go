package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/instanimals/instanimals-cli/internal/adapters/render/appview"
	"github.com/instanimals/instanimals-cli/internal/domain"
)

func newFeedCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show and interact with the moments feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}
			printPosts(cmd, app, app.cache.Posts)
			return nil
		},
	}

	cmd.AddCommand(
		newFeedLikeCmd(app),
		newFeedCommentCmd(app),
		newFeedPostCmd(app),
		newFeedSearchCmd(app),
	)

	return cmd
}

func newFeedLikeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Toggle a like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			if err := app.feed.ToggleLike(id); err != nil {
				return err
			}

			post, _ := app.cache.FindPost(id)
			state := "unliked"
			if app.cache.IsLiked(id) {
				state = "liked"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s; %d likes\n", state, post.LikeCount)
			return nil
		},
	}
}

func newFeedCommentCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <post-id> <text>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			if err := app.feed.SubmitComment(id, args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Comment posted.")
			return nil
		},
	}
}

func newFeedPostCmd(app *app) *cobra.Command {
	var mediaURL string

	cmd := &cobra.Command{
		Use:   "post <text>",
		Short: "Create a new post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			app.feed.DefaultMediaURL = mediaURL
			post, err := app.feed.CreatePost(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Posted as @%s (id %d).\n", post.AuthorHandle, post.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&mediaURL, "media", "", "Media URL to attach")

	return cmd
}

func newFeedSearchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts by text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			matched := app.cache.FilterPosts(args[0])
			if len(matched) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No posts matched.")
				return nil
			}
			printPosts(cmd, app, matched)
			return nil
		},
	}
}

func printPosts(cmd *cobra.Command, app *app, posts []domain.Post) {
	out := cmd.OutOrStdout()
	for _, p := range posts {
		display := "@" + p.AuthorHandle
		if p.IsShelter {
			display = appview.FormatShelterName(p.AuthorHandle)
		}

		likeMark := "♡"
		if app.cache.IsLiked(p.ID) {
			likeMark = "♥"
		}

		_, _ = fmt.Fprintf(out, "[%d] %s  %s\n", p.ID, display, p.Location)
		_, _ = fmt.Fprintf(out, "    %s\n", p.BodyText)
		_, _ = fmt.Fprintf(out, "    %s %d  comments: %d\n", likeMark, p.LikeCount, len(p.Comments))
		for _, c := range p.Comments {
			_, _ = fmt.Fprintf(out, "      @%s: %s\n", c.AuthorName, c.Text)
		}
	}
}

func parsePostID(raw string) (domain.PostID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q: %w", raw, err)
	}
	return domain.PostID(id), nil
}
