package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/PavaniTiago/readiness-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
	"github.com/PavaniTiago/readiness-survey-api/internal/interfaces/mcptools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// --- questions ---

func newQuestionsCmd(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			questions := questionnaire.Questions()
			rows := make([][]string, 0, len(questions))
			for _, q := range questions {
				gating := ""
				if q.IsGating {
					gating = "yes"
				}
				rows = append(rows, []string{q.ID, string(q.Dimension), gating, truncate(q.Text, 70)})
			}
			return printOutput(cmd.OutOrStdout(), cli.format(), questions,
				[]string{"id", "dimension", "gating", "question"}, rows)
		},
	}
}

// --- create ---

func newCreateCmd(cli *cliContext) *cobra.Command {
	var input usecases.CreateResponseInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a survey response and print its ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := cli.useCase()
			if err != nil {
				return err
			}
			id, err := uc.CreateResponse(cmd.Context(), input)
			if err != nil {
				return err
			}

			if cli.format() == outputTable {
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}
			return printOutput(cmd.OutOrStdout(), cli.format(), map[string]string{"id": id}, nil, nil)
		},
	}

	cmd.Flags().StringVar(&input.CompanyName, "company", "", "Company name (required)")
	cmd.Flags().StringVar(&input.ProjectName, "project", "", "Project name (required)")
	cmd.Flags().StringVar(&input.GoLiveDate, "go-live", "", "Planned go-live date")
	cmd.Flags().StringVar(&input.RespondentRole, "role", "", "Respondent role")
	cmd.Flags().StringVar(&input.RespondentEmail, "email", "", "Respondent email")
	return cmd
}

// --- submit ---

func newSubmitCmd(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <id> <file.json>",
		Short: `Submit a {"answers": {...}} document; "-" reads stdin`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			uc, err := cli.useCase()
			if err != nil {
				return err
			}
			if err := uc.SubmitAnswers(cmd.Context(), args[0], body); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "answers saved for %s\n", args[0])
			return nil
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return b, nil
}

// --- show ---

func newShowCmd(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a response with its recomputed scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := cli.useCase()
			if err != nil {
				return err
			}
			view, err := uc.GetResponse(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cli.format() != outputTable {
				return printOutput(w, cli.format(), view, nil, nil)
			}
			return printView(w, view)
		},
	}
}

func printView(w io.Writer, view *usecases.ResponseView) error {
	fields := [][]string{
		{"ID", view.ID},
		{"Company", view.CompanyName},
		{"Project", view.ProjectName},
		{"Go-live Date", deref(view.GoLiveDate)},
		{"Respondent Role", deref(view.RespondentRole)},
		{"Respondent Email", deref(view.RespondentEmail)},
		{"Answers", fmt.Sprintf("%d/%d", len(view.Answers), questionnaire.Count())},
	}
	if err := printTable(w, []string{"field", "value"}, fields); err != nil {
		return err
	}

	if view.Scores == nil {
		fmt.Fprintln(w, "\nScores: not available until every question is answered")
		return nil
	}

	fmt.Fprintln(w)
	rows := make([][]string, 0, len(view.Scores.Dimensions)+1)
	for _, d := range view.Scores.Dimensions {
		rows = append(rows, []string{string(d.Dimension), strconv.Itoa(d.Score), string(d.TrafficLight)})
	}
	rows = append(rows, []string{"Overall", strconv.Itoa(view.Scores.Overall), string(view.Scores.OverallTrafficLight)})
	if err := printTable(w, []string{"dimension", "score", "light"}, rows); err != nil {
		return err
	}

	printList(w, "Gating warnings", view.Scores.GatingWarnings)
	printList(w, "Risks", view.Scores.Risks)
	printList(w, "Recommendations", view.Scores.Recommendations)
	return nil
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// --- export ---

func newExportCmd(cli *cliContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write the CSV export of a response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := cli.useCase()
			if err != nil {
				return err
			}
			out, err := uc.ExportResponse(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if file == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(file, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", file, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to this file instead of stdout")
	return cmd
}

// --- mcp ---

func newMcpCmd(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the survey as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := cli.useCase()
			if err != nil {
				return err
			}
			return server.ServeStdio(mcptools.NewServer(uc, version))
		},
	}
}
