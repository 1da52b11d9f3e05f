// Where: internal/launcher/build_test.go
// What: Tests for image build argument construction.
// Why: The build invocation is the contract; keep it stable.
package launcher

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestBuildImageArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := BuildOptions{
		ContextDir: "/project",
		Dockerfile: "Dockerfile",
		Ref:        "gpt-researcher:latest",
		Verbose:    true,
	}
	if err := BuildImage(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if runner.name != "docker" {
		t.Fatalf("expected docker, got %s", runner.name)
	}
	if runner.dir != "/project" {
		t.Fatalf("expected build in /project, got %s", runner.dir)
	}
	expected := []string{"build", "-t", "gpt-researcher:latest", "-f", "Dockerfile", "/project"}
	if !reflect.DeepEqual(runner.args, expected) {
		t.Fatalf("unexpected args: %v", runner.args)
	}
}

func TestBuildImageNoCacheAndPull(t *testing.T) {
	runner := &fakeRunner{}
	opts := BuildOptions{
		ContextDir: "/project",
		Ref:        "gpt-researcher:dev",
		NoCache:    true,
		Pull:       true,
		Verbose:    true,
	}
	if err := BuildImage(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := []string{"build", "-t", "gpt-researcher:dev", "--no-cache", "--pull", "/project"}
	if !reflect.DeepEqual(runner.args, expected) {
		t.Fatalf("unexpected args: %v", runner.args)
	}
}

func TestBuildImageQuietFailure(t *testing.T) {
	runner := &fakeRunner{output: []byte("step 3 failed"), err: errors.New("exit status 1")}
	opts := BuildOptions{ContextDir: "/project", Ref: "gpt-researcher:latest"}

	err := BuildImage(context.Background(), runner, opts)
	if err == nil {
		t.Fatal("expected build failure to propagate")
	}
}

func TestBuildImageRequiresRef(t *testing.T) {
	if err := BuildImage(context.Background(), &fakeRunner{}, BuildOptions{}); err == nil {
		t.Fatal("expected error for empty image reference")
	}
}

func TestBuildImageNilRunner(t *testing.T) {
	if err := BuildImage(context.Background(), nil, BuildOptions{Ref: "x:y"}); err == nil {
		t.Fatal("expected error for nil runner")
	}
}
