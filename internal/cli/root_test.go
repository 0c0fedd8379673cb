package cli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/modu-ai/liftoff/internal/gradle/runner"
	"github.com/modu-ai/liftoff/internal/i18n"
	"github.com/modu-ai/liftoff/pkg/models"
	"github.com/modu-ai/liftoff/pkg/version"
)

// gradleCall records one fake Gradle invocation.
type gradleCall struct {
	dir  string
	argv []string
}

// setTestDeps installs headless dependencies with an isolated environment
// and a fake Gradle that prints one line. It returns the recorded calls.
func setTestDeps(t *testing.T, environ map[string]string) *[]gradleCall {
	t.Helper()

	d, err := NewDependencies(nil)
	if err != nil {
		t.Fatalf("NewDependencies: %v", err)
	}
	if environ == nil {
		environ = map[string]string{}
	}
	d.Environ = environ
	d.Headless.ForceHeadless(true)
	d.Wizard = func(*models.ProjectSelections, *i18n.Localizer) error {
		t.Error("wizard must not run in headless tests")
		return nil
	}

	calls := &[]gradleCall{}
	d.Runner = runner.New(d.Deployer, runner.WithCommandFactory(func(dir, name string, args ...string) *exec.Cmd {
		*calls = append(*calls, gradleCall{dir: dir, argv: append([]string{name}, args...)})
		cmd := exec.Command("sh", "-c", "echo BUILD SUCCESSFUL")
		cmd.Dir = dir
		return cmd
	}))

	prev := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(prev) })
	return calls
}

// execute runs the command tree with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"new", "list", "version"} {
		if !names[want] {
			t.Errorf("%s should be registered as a subcommand of root", want)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "locale"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root should have --%s flag", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	setTestDeps(t, nil)

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, version.GetVersion()) || !strings.Contains(out, "libGDX "+version.GdxVersion) {
		t.Errorf("output = %q", out)
	}
}

func TestListCmd_Markdown(t *testing.T) {
	setTestDeps(t, nil)

	out, err := execute(t, "list", "--markdown")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"# Available options", "## Platforms", "`lwjgl3`", "`kotlin`", "`ashley`", "`anim8`", "`classic`"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestListCmd_Rendered(t *testing.T) {
	setTestDeps(t, nil)

	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "lwjgl3") || strings.Contains(out, "|----|") {
		t.Errorf("list should render markdown tables:\n%s", out)
	}
}

func TestLocalizerPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		env     string
		environ map[string]string
		want    string
	}{
		{"default", "", "", map[string]string{}, "Available options"},
		{"lang variable", "", "", map[string]string{"LANG": "ko_KR.UTF-8"}, "사용 가능한 옵션"},
		{"C locale ignored", "", "", map[string]string{"LANG": "C"}, "Available options"},
		{"liftoff locale wins over lang", "", "en", map[string]string{"LANG": "ko_KR.UTF-8"}, "Available options"},
		{"flag wins", "ko", "en", map[string]string{}, "사용 가능한 옵션"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestDeps(t, tt.environ)
			cmd := newListCmd()
			cmd.Flags().String("locale", "", "")
			if tt.flag != "" {
				if err := cmd.Flags().Set("locale", tt.flag); err != nil {
					t.Fatal(err)
				}
			}
			loc, err := localizer(cmd, tt.env)
			if err != nil {
				t.Fatalf("localizer: %v", err)
			}
			if got := loc.Text("list.title"); got != tt.want {
				t.Errorf("list.title = %q, want %q", got, tt.want)
			}
		})
	}
}
