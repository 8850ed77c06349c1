package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

const timeLayout = "2006-01-02 15:04"

// presenter renders domain values for a terminal.
type presenter struct {
	out io.Writer
}

func (p presenter) user(u *user.User) {
	fmt.Fprintf(p.out, "%s <%s>\n", u.ID(), u.Email())
}

func (p presenter) taskList(tasks []*task.Task) error {
	if len(tasks) == 0 {
		fmt.Fprintln(p.out, "no tasks")
		return nil
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTITLE\tCREATED")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID(), checkbox(t), truncate(t.Title(), 50), localTime(t.CreatedAt()))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write task list: %w", err)
	}

	done := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			done++
		}
	}
	fmt.Fprintf(p.out, "\n%d tasks, %d completed\n", len(tasks), done)
	return nil
}

func (p presenter) task(t *task.Task) error {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "id:\t%s\n", t.ID())
	fmt.Fprintf(tw, "title:\t%s\n", t.Title())
	if t.Description() != "" {
		fmt.Fprintf(tw, "description:\t%s\n", t.Description())
	}
	fmt.Fprintf(tw, "status:\t%s\n", t.Status())
	fmt.Fprintf(tw, "created:\t%s\n", localTime(t.CreatedAt()))
	if ts := t.UpdatedAt(); ts != nil {
		fmt.Fprintf(tw, "updated:\t%s\n", localTime(*ts))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write task: %w", err)
	}
	return nil
}

// FormatError renders err for a terminal. Validation failures list each
// rejected field on its own line.
func FormatError(err error) string {
	verrs := domain.ValidationErrors(err)
	if len(verrs) == 0 {
		if errors.Is(err, domain.ErrUnavailable) {
			return fmt.Sprintf("error: %v\nis the tasks server running?", err)
		}
		return "error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString("error: invalid input")
	for _, v := range verrs {
		fmt.Fprintf(&b, "\n  %s: %s", v.Field, v.Reason)
	}
	return b.String()
}

func checkbox(t *task.Task) string {
	if t.IsCompleted() {
		return "[x]"
	}
	return "[ ]"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func localTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}
