// Package cli implements taskctl, a terminal front end for the tasks
// service. Commands talk to ports.AuthService and ports.TaskService, so the
// same code drives an in-process backend or a remote server through the API
// client. The current user is remembered in a session file between runs.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/platform/fanout"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// ErrUsage is returned for malformed command lines. The usage text has
// already been written to the error stream.
var ErrUsage = errors.New("usage error")

// batchSize bounds concurrent backend calls for commands taking several
// task ids.
const batchSize = 4

// Status filters accepted by "list -status".
const (
	filterAll       = "all"
	filterPending   = "pending"
	filterCompleted = "completed"
)

// App dispatches taskctl subcommands.
type App struct {
	auth    ports.AuthService
	tasks   ports.TaskService
	session *SessionStore
	out     io.Writer
	errOut  io.Writer
	now     func() time.Time
}

// New creates an App. Output goes to out; usage and flag errors to errOut.
func New(auth ports.AuthService, tasks ports.TaskService, session *SessionStore, out, errOut io.Writer) *App {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &App{
		auth:    auth,
		tasks:   tasks,
		session: session,
		out:     out,
		errOut:  errOut,
		now:     time.Now,
	}
}

type command struct {
	name    string
	args    string
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{"signup", "<email>", "register a new account and log in", (*App).signup},
	{"login", "<email>", "log in as an existing user", (*App).login},
	{"logout", "", "forget the current user", (*App).logout},
	{"whoami", "", "show the current user", (*App).whoami},
	{"list", "[-status all|pending|completed]", "list your tasks, newest first", (*App).list},
	{"add", "[-d description] <title>", "create a task", (*App).add},
	{"show", "<task-id>", "show one task", (*App).show},
	{"edit", "[-title t] [-d description] <task-id>", "change a task's title or description", (*App).edit},
	{"done", "<task-id>...", "mark tasks completed", (*App).done},
	{"undo", "<task-id>...", "mark tasks pending", (*App).undo},
	{"toggle", "<task-id>...", "flip tasks between pending and completed", (*App).toggle},
	{"rm", "<task-id>...", "delete tasks", (*App).remove},
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.usage()
		return nil
	}
	for _, c := range commands {
		if c.name == name {
			return c.run(a, ctx, args[1:])
		}
	}
	fmt.Fprintf(a.errOut, "taskctl: unknown command %q\n\n", name)
	a.usage()
	return ErrUsage
}

func (a *App) usage() {
	fmt.Fprintln(a.errOut, "usage: taskctl <command> [arguments]")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "commands:")
	for _, c := range commands {
		fmt.Fprintf(a.errOut, "  %-8s %-40s %s\n", c.name, c.args, c.summary)
	}
}

// flagSet builds a per-command flag set that reports errors instead of
// exiting.
func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("taskctl "+name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// parse parses args and requires exactly want positional arguments.
func (a *App) parse(fs *flag.FlagSet, args []string, want int, argsUsage string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrUsage
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != want {
		fmt.Fprintf(a.errOut, "usage: %s %s\n", fs.Name(), argsUsage)
		return nil, ErrUsage
	}
	return fs.Args(), nil
}

func (a *App) signup(ctx context.Context, args []string) error {
	pos, err := a.parse(a.flagSet("signup"), args, 1, "<email>")
	if err != nil {
		return err
	}

	u, err := a.auth.CreateUser(ctx, ports.CreateUserCommand{Email: pos[0]})
	if err != nil {
		return err
	}
	if err := a.session.Save(Session{UserID: u.ID().String(), Email: u.Email().String(), LoggedInAt: a.now().UTC()}); err != nil {
		return err
	}
	fmt.Fprint(a.out, "signed up and logged in as ")
	presenter{a.out}.user(u)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	pos, err := a.parse(a.flagSet("login"), args, 1, "<email>")
	if err != nil {
		return err
	}

	u, err := a.auth.FindUserByEmail(ctx, ports.FindUserQuery{Email: pos[0]})
	if err != nil {
		return err
	}
	if u == nil {
		return domain.NewUserNotFoundError(strings.TrimSpace(pos[0]))
	}
	if err := a.session.Save(Session{UserID: u.ID().String(), Email: u.Email().String(), LoggedInAt: a.now().UTC()}); err != nil {
		return err
	}
	fmt.Fprint(a.out, "logged in as ")
	presenter{a.out}.user(u)
	return nil
}

func (a *App) logout(_ context.Context, args []string) error {
	if _, err := a.parse(a.flagSet("logout"), args, 0, ""); err != nil {
		return err
	}
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) whoami(_ context.Context, args []string) error {
	if _, err := a.parse(a.flagSet("whoami"), args, 0, ""); err != nil {
		return err
	}
	sess, err := a.session.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s>\n", sess.UserID, sess.Email)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.flagSet("list")
	status := fs.String("status", filterAll, "show only all, pending or completed tasks")
	if _, err := a.parse(fs, args, 0, "[-status all|pending|completed]"); err != nil {
		return err
	}

	var keep func(*task.Task) bool
	switch *status {
	case filterAll:
	case filterPending:
		keep = func(t *task.Task) bool { return !t.IsCompleted() }
	case filterCompleted:
		keep = (*task.Task).IsCompleted
	default:
		fmt.Fprintf(a.errOut, "taskctl list: unknown status %q\n", *status)
		return ErrUsage
	}

	sess, err := a.session.Load()
	if err != nil {
		return err
	}
	tasks, err := a.tasks.GetTasks(ctx, ports.GetTasksQuery{UserID: sess.UserID})
	if err != nil {
		return err
	}
	if keep != nil {
		filtered := tasks[:0:0]
		for _, t := range tasks {
			if keep(t) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	return presenter{a.out}.taskList(tasks)
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.flagSet("add")
	desc := fs.String("d", "", "task description")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(a.errOut, "usage: taskctl add [-d description] <title>")
		return ErrUsage
	}

	sess, err := a.session.Load()
	if err != nil {
		return err
	}
	t, err := a.tasks.CreateTask(ctx, ports.CreateTaskCommand{
		UserID:      sess.UserID,
		Title:       strings.Join(fs.Args(), " "),
		Description: *desc,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created task %s\n", t.ID())
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	pos, err := a.parse(a.flagSet("show"), args, 1, "<task-id>")
	if err != nil {
		return err
	}
	sess, err := a.session.Load()
	if err != nil {
		return err
	}

	t, err := a.tasks.GetTask(ctx, ports.GetTaskQuery{TaskID: pos[0]})
	if err != nil {
		return err
	}
	if t.UserID().String() != sess.UserID {
		return &domain.AccessDeniedError{TaskID: pos[0], UserID: sess.UserID}
	}
	return presenter{a.out}.task(t)
}

func (a *App) edit(ctx context.Context, args []string) error {
	fs := a.flagSet("edit")
	title := fs.String("title", "", "new title")
	desc := fs.String("d", "", "new description")
	pos, err := a.parse(fs, args, 1, "[-title t] [-d description] <task-id>")
	if err != nil {
		return err
	}

	cmd := ports.UpdateTaskCommand{TaskID: pos[0]}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cmd.Title = title
		case "d":
			cmd.Description = desc
		}
	})
	if cmd.IsEmpty() {
		fmt.Fprintln(a.errOut, "taskctl edit: nothing to change; pass -title and/or -d")
		return ErrUsage
	}
	return a.update(ctx, cmd)
}

func (a *App) done(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, "done", args, true)
}

func (a *App) undo(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, "undo", args, false)
}

func (a *App) setCompleted(ctx context.Context, name string, args []string, completed bool) error {
	return a.eachTask(ctx, name, args, func(ctx context.Context, userID, id string) (string, error) {
		t, err := a.tasks.UpdateTask(ctx, ports.UpdateTaskCommand{TaskID: id, UserID: userID, Completed: &completed})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("updated task %s (%s)", t.ID(), t.Status()), nil
	})
}

func (a *App) update(ctx context.Context, cmd ports.UpdateTaskCommand) error {
	sess, err := a.session.Load()
	if err != nil {
		return err
	}
	cmd.UserID = sess.UserID

	t, err := a.tasks.UpdateTask(ctx, cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated task %s (%s)\n", t.ID(), t.Status())
	return nil
}

func (a *App) toggle(ctx context.Context, args []string) error {
	return a.eachTask(ctx, "toggle", args, func(ctx context.Context, userID, id string) (string, error) {
		t, err := a.tasks.ToggleTask(ctx, ports.ToggleTaskCommand{TaskID: id, UserID: userID})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("toggled task %s (%s)", t.ID(), t.Status()), nil
	})
}

func (a *App) remove(ctx context.Context, args []string) error {
	return a.eachTask(ctx, "rm", args, func(ctx context.Context, userID, id string) (string, error) {
		if err := a.tasks.DeleteTask(ctx, ports.DeleteTaskCommand{TaskID: id, UserID: userID}); err != nil {
			return "", err
		}
		return "deleted task " + id, nil
	})
}

// eachTask applies fn to every task id in args on behalf of the current
// user, batchSize at a time. Successful lines are printed in argument order;
// failures are joined into the returned error.
func (a *App) eachTask(ctx context.Context, name string, args []string, fn func(ctx context.Context, userID, id string) (string, error)) error {
	fs := a.flagSet(name)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(a.errOut, "usage: %s <task-id>...\n", fs.Name())
		return ErrUsage
	}
	sess, err := a.session.Load()
	if err != nil {
		return err
	}

	results := fanout.Run(ctx, batchSize, fs.Args(), func(ctx context.Context, id string) (string, error) {
		return fn(ctx, sess.UserID, id)
	})
	for _, r := range results {
		if r.Err == nil {
			fmt.Fprintln(a.out, r.Value)
		}
	}
	return fanout.Errors(results)
}
