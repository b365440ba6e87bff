package tasks

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	task := NewTask(TaskTypeProcessChannel, "test_channel")

	if task.GetID() == "" {
		t.Error("Expected a non-empty task ID")
	}
	if task.GetType() != TaskTypeProcessChannel {
		t.Errorf("Expected type '%s', got '%s'", TaskTypeProcessChannel, task.GetType())
	}
	if task.GetChannelName() != "test_channel" {
		t.Errorf("Expected channel 'test_channel', got '%s'", task.GetChannelName())
	}

	other := NewTask(TaskTypeProcessChannel, "test_channel")
	if task.GetID() == other.GetID() {
		t.Error("Expected distinct IDs for distinct tasks")
	}
}

func TestTaskDuration(t *testing.T) {
	task := NewTask(TaskTypeProcessChannel, "test_channel")

	if task.GetDuration() != 0 {
		t.Errorf("Expected zero duration before Start, got %v", task.GetDuration())
	}

	task.Start()
	time.Sleep(time.Millisecond)
	if task.GetDuration() <= 0 {
		t.Errorf("Expected positive duration after Start, got %v", task.GetDuration())
	}
}
