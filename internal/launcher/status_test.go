// Where: internal/launcher/status_test.go
// What: Tests for container lookup and status display.
// Why: Exact-name matching guards against substring filter surprises.
package launcher

import (
	"context"
	"testing"

	"github.com/docker/docker/api/types/container"
)

func TestFindContainerExactMatch(t *testing.T) {
	client := &fakeDockerClient{
		listResult: []container.Summary{
			{ID: "other", Names: []string{"/gpt-researcher-dev"}},
			{ID: "cid-1", Names: []string{"/gpt-researcher"}},
		},
	}

	ctr, err := FindContainer(context.Background(), client, "gpt-researcher")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ctr == nil || ctr.ID != "cid-1" {
		t.Fatalf("expected exact match cid-1, got %+v", ctr)
	}
}

func TestFindContainerAbsent(t *testing.T) {
	client := &fakeDockerClient{
		listResult: []container.Summary{
			{ID: "other", Names: []string{"/gpt-researcher-dev"}},
		},
	}

	ctr, err := FindContainer(context.Background(), client, "gpt-researcher")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ctr != nil {
		t.Fatalf("expected nil for absent container, got %+v", ctr)
	}
}

func TestStatusFormatsPorts(t *testing.T) {
	client := &fakeDockerClient{
		listResult: []container.Summary{
			{
				ID:     "cid-1",
				Names:  []string{"/gpt-researcher"},
				Image:  "gpt-researcher:latest",
				State:  "running",
				Status: "Up 2 hours",
				Ports: []container.Port{
					{PrivatePort: 11250, PublicPort: 11250, Type: "tcp"},
				},
			},
		},
	}

	status, err := Status(context.Background(), client, "gpt-researcher")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status == nil {
		t.Fatal("expected status")
	}
	if status.State != "running" || status.Status != "Up 2 hours" {
		t.Fatalf("unexpected state: %+v", status)
	}
	if len(status.Ports) != 1 || status.Ports[0] != "0.0.0.0:11250->11250/tcp" {
		t.Fatalf("unexpected ports: %v", status.Ports)
	}
}

func TestStatusAbsentContainer(t *testing.T) {
	status, err := Status(context.Background(), &fakeDockerClient{}, "gpt-researcher")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status != nil {
		t.Fatalf("expected nil status, got %+v", status)
	}
}
