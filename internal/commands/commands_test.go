package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/taskdeck/internal/models"
)

// testEnv points HOME and the database at a temp dir
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return filepath.Join(dir, "tasks.db")
}

func execute(t *testing.T, db, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", db}, args...))

	err := Execute(context.Background())
	return out.String(), err
}

// resetFlags undoes flag values left over from a previous Execute
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func listJSON(t *testing.T, db string, args ...string) []models.Task {
	t.Helper()
	out, err := execute(t, db, "", append([]string{"ls", "--json"}, args...)...)
	require.NoError(t, err)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	return tasks
}

func TestAdd_QuickSyntaxAndFlags(t *testing.T) {
	db := testEnv(t)

	out, err := execute(t, db, "", "add", "Pay rent @home +high due:2026-10-20")
	require.NoError(t, err)
	assert.Contains(t, out, `New task "Pay rent" added`)

	_, err = execute(t, db, "", "add", "Ship release", "-c", "work", "-d", "v2", "--due", "2026-11-01", "-p", "7")
	require.NoError(t, err)

	tasks := listJSON(t, db)
	require.Len(t, tasks, 2)

	// Newest first
	assert.Equal(t, "Ship release", tasks[0].Title)
	assert.Equal(t, "work", tasks[0].Category)
	assert.Equal(t, "v2", tasks[0].Description)
	assert.Equal(t, "2026-11-01", tasks[0].DueDate)
	assert.Equal(t, 7, tasks[0].Priority)

	assert.Equal(t, "Pay rent", tasks[1].Title)
	assert.Equal(t, "home", tasks[1].Category)
	assert.Equal(t, "2026-10-20", tasks[1].DueDate)
	assert.Equal(t, 3, tasks[1].Priority)
	assert.False(t, tasks[1].Completed)
	assert.Greater(t, tasks[0].ID, tasks[1].ID)
}

func TestAdd_Rejections(t *testing.T) {
	db := testEnv(t)

	_, err := execute(t, db, "", "add", "   ")
	require.Error(t, err)
	assert.Equal(t, "Title is required!", err.Error())

	_, err = execute(t, db, "", "add", "Report", "--due", "someday")
	assert.Error(t, err)

	_, err = execute(t, db, "", "add", "Report +urgent")
	assert.ErrorContains(t, err, "could not parse task")

	assert.Empty(t, listJSON(t, db))
}

func TestDone_TogglesAndReportsMissing(t *testing.T) {
	db := testEnv(t)
	_, err := execute(t, db, "", "add", "Water plants")
	require.NoError(t, err)
	id := listJSON(t, db)[0].ID

	out, err := execute(t, db, "", "done", itoa(id))
	require.NoError(t, err)
	assert.Contains(t, out, "as done: Water plants")
	assert.True(t, listJSON(t, db)[0].Completed)

	out, err = execute(t, db, "", "done", itoa(id))
	require.NoError(t, err)
	assert.Contains(t, out, "back to pending")
	assert.False(t, listJSON(t, db)[0].Completed)

	_, err = execute(t, db, "", "done", "42")
	assert.ErrorContains(t, err, "task 42 not found")

	_, err = execute(t, db, "", "done", "abc")
	assert.ErrorContains(t, err, "invalid task ID")
}

func TestRemove_AsksFirst(t *testing.T) {
	db := testEnv(t)
	_, err := execute(t, db, "", "add", "Old task")
	require.NoError(t, err)
	id := listJSON(t, db)[0].ID

	out, err := execute(t, db, "n\n", "rm", itoa(id))
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to delete this task?")
	assert.Contains(t, out, "cancelled")
	assert.Len(t, listJSON(t, db), 1)

	// No answer at all counts as No
	_, err = execute(t, db, "", "rm", itoa(id))
	require.NoError(t, err)
	assert.Len(t, listJSON(t, db), 1)

	out, err = execute(t, db, "y\n", "rm", itoa(id))
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task")
	assert.Empty(t, listJSON(t, db))

	_, err = execute(t, db, "", "rm", "--yes", itoa(id))
	assert.ErrorContains(t, err, "not found")
}

func TestRemove_YesSkipsPrompt(t *testing.T) {
	db := testEnv(t)
	_, err := execute(t, db, "", "add", "Scratch")
	require.NoError(t, err)

	out, err := execute(t, db, "", "rm", "-y", itoa(listJSON(t, db)[0].ID))
	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.Empty(t, listJSON(t, db))
}

func TestList_FilterSearchSort(t *testing.T) {
	db := testEnv(t)
	for _, title := range []string{"Pay rent @home +1", "Ship release @work +3", "Water plants @home +2"} {
		_, err := execute(t, db, "", "add", title)
		require.NoError(t, err)
	}
	ship := listJSON(t, db, "--search", "ship")[0]
	_, err := execute(t, db, "", "done", itoa(ship.ID))
	require.NoError(t, err)

	titles := func(tasks []models.Task) []string {
		var out []string
		for _, task := range tasks {
			out = append(out, task.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Water plants", "Pay rent"}, titles(listJSON(t, db, "-f", "pending")))
	assert.Equal(t, []string{"Ship release"}, titles(listJSON(t, db, "-f", "completed")))
	assert.Equal(t, []string{"Water plants", "Pay rent"}, titles(listJSON(t, db, "-s", "HOME")))
	assert.Equal(t, []string{"Ship release", "Water plants", "Pay rent"}, titles(listJSON(t, db, "-o", "priority")))

	_, err = execute(t, db, "", "ls", "--filter", "soon")
	assert.ErrorContains(t, err, "unknown filter")
	_, err = execute(t, db, "", "ls", "--sort", "random")
	assert.ErrorContains(t, err, "unknown sort")

	out, err := execute(t, db, "", "search", "plants")
	require.NoError(t, err)
	assert.Contains(t, out, "Water plants")
	assert.NotContains(t, out, "Pay rent")

	out, err = execute(t, db, "", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "high")
}

func TestList_Empty(t *testing.T) {
	db := testEnv(t)

	out, err := execute(t, db, "", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")

	assert.Equal(t, "[]", strings.TrimSpace(mustExecute(t, db, "ls", "--json")))
}

func TestSlotsAreIndependent(t *testing.T) {
	db := testEnv(t)
	_, err := execute(t, db, "", "--slot", "work", "add", "Standup")
	require.NoError(t, err)

	assert.Empty(t, listJSON(t, db))
	assert.Len(t, listJSON(t, db, "--slot", "work"), 1)
}

func TestStats(t *testing.T) {
	db := testEnv(t)
	for _, title := range []string{"A +1", "B +3"} {
		_, err := execute(t, db, "", "add", title)
		require.NoError(t, err)
	}
	_, err := execute(t, db, "", "done", itoa(listJSON(t, db, "-s", "A")[0].ID))
	require.NoError(t, err)

	out, err := execute(t, db, "", "stats", "--no-chart")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:      2")
	assert.Contains(t, out, "Completed:  1")
	assert.Contains(t, out, "50%")

	withChart, err := execute(t, db, "", "stats")
	require.NoError(t, err)
	assert.Greater(t, len(withChart), len(out))
}

func TestVersionAndHelp(t *testing.T) {
	SetVersion("1.2.3", "abc", "today")
	out, err := execute(t, testEnv(t), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "taskdeck 1.2.3 (commit abc, built today)\n", out)

	out, err = execute(t, testEnv(t), "", "help")
	require.NoError(t, err)
	assert.Contains(t, out, "BOARD KEYS")
}

func mustExecute(t *testing.T, db string, args ...string) string {
	t.Helper()
	out, err := execute(t, db, "", args...)
	require.NoError(t, err)
	return out
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
