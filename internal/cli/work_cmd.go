package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/enjaz/internal/domain"
)

func newWorkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Manage work items",
	}
	cmd.AddCommand(
		newWorkListCmd(app),
		newWorkShowCmd(app),
		newWorkCreateCmd(app),
		newWorkStatusCmd(app),
		newWorkCommentCmd(app),
		newWorkApproveCmd(app),
	)
	return cmd
}

func newWorkListCmd(app *App) *cobra.Command {
	var project, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Provider.WorkItems.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "Title", "Type", "Priority", "Status", "Project")
			for _, w := range items {
				if project != "" && w.ProjectID != project {
					continue
				}
				if status != "" && string(w.Status) != status {
					continue
				}
				tw.AppendRow([]any{w.ID, truncate(w.Title, 40), w.Type, w.Priority, w.Status, w.ProjectID})
			}
			tw.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "filter by project id")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func newWorkShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Provider.WorkItems.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("work item %s not found", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", item.ID, item.Title)
			fmt.Fprintf(out, "%s | %s | %s | project %s | v%d\n", item.Type, item.Priority, item.Status, item.ProjectID, item.Version)
			if item.Description != "" {
				fmt.Fprintf(out, "\n%s\n", item.Description)
			}
			if len(item.ApprovalChain) > 0 {
				fmt.Fprintln(out)
				tw := newTable(out, "Step", "Approver", "Role", "Decision")
				for _, s := range item.ApprovalChain {
					tw.AppendRow([]any{s.ID, s.ApproverName, s.Role, s.Decision})
				}
				tw.Render()
			}
			for _, c := range item.Comments {
				fmt.Fprintf(out, "\n[%s] %s: %s\n", c.Timestamp.Format("2006-01-02 15:04"), c.UserName, c.Text)
			}
			return nil
		},
	}
}

func newWorkCreateCmd(app *App) *cobra.Command {
	var item struct {
		title, description, itemType, priority, project, assignee string
	}
	var suggest bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a work item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			priority := domain.Priority(item.priority)
			if suggest {
				if app.Provider.AI == nil {
					return fmt.Errorf("priority suggestion needs the AI service enabled")
				}
				p, err := app.Provider.AI.SuggestPriority(ctx, item.title, item.description)
				if err != nil {
					return fmt.Errorf("suggesting priority: %w", err)
				}
				priority = p
			}
			created, err := app.Provider.WorkItems.Create(ctx, domain.WorkItem{
				Title:       item.title,
				Description: item.description,
				Type:        domain.WorkItemType(item.itemType),
				Priority:    priority,
				ProjectID:   item.project,
				AssigneeID:  item.assignee,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s, %s)\n", created.ID, created.Type, created.Priority)
			return nil
		},
	}

	cmd.Flags().StringVar(&item.title, "title", "", "title (required)")
	cmd.Flags().StringVar(&item.description, "description", "", "description")
	cmd.Flags().StringVar(&item.itemType, "type", string(domain.TypeTask), "work item type")
	cmd.Flags().StringVar(&item.priority, "priority", string(domain.PriorityMedium), "priority")
	cmd.Flags().StringVar(&item.project, "project", "", "project id (required)")
	cmd.Flags().StringVar(&item.assignee, "assignee", "", "assignee user id")
	cmd.Flags().BoolVar(&suggest, "suggest-priority", false, "let the AI service pick the priority")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newWorkStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update a work item's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Provider.WorkItems.UpdateStatus(cmd.Context(), args[0], domain.Status(args[1]))
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("work item %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s (v%d)\n", item.ID, item.Status, item.Version)
			return nil
		},
	}
}

func newWorkCommentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <id> <text>",
		Short: "Add a comment to a work item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.Provider.Users.Current(ctx)
			if err != nil {
				return err
			}
			comment := domain.Comment{Text: args[1]}
			if user != nil {
				comment.UserID = user.ID
				comment.UserName = user.Name
			}
			item, err := app.Provider.WorkItems.AddComment(ctx, args[0], comment)
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("work item %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment added to %s\n", item.ID)
			return nil
		},
	}
}

func newWorkApproveCmd(app *App) *cobra.Command {
	var reject bool
	var comments string

	cmd := &cobra.Command{
		Use:   "approve <id> <step-id>",
		Short: "Record an approval decision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decision := domain.DecisionApproved
			if reject {
				decision = domain.DecisionRejected
			}
			item, err := app.Provider.WorkItems.SubmitApproval(cmd.Context(), args[0], args[1], decision, comments)
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("no pending step %s on work item %s", args[1], args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s on %s; item is %s\n", decision, args[1], item.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reject, "reject", false, "record a rejection instead of an approval")
	cmd.Flags().StringVar(&comments, "comments", "", "decision comments")
	return cmd
}
