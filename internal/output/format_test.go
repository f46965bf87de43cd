package output

import (
	"bytes"
	"testing"

	"tasklist/internal/task"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task task.Task
		want string
	}{
		{name: "open", num: 1, task: task.Task{Title: "Buy milk"}, want: "   1  [ ] Buy milk\n"},
		{name: "completed", num: 12, task: task.Task{Title: "Call Bob", IsCompleted: true}, want: "  12  [x] Call Bob\n"},
		{name: "newlines", num: 3, task: task.Task{Title: "line\r\nbreak"}, want: "   3  [ ] line  break\n"},
		{name: "blank", num: 4, task: task.Task{Title: "   "}, want: "   4  [ ] (untitled)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.num, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	var buf bytes.Buffer
	FormatList(&buf, []task.Task{{Title: "A"}, {Title: "B", IsCompleted: true}})

	want := "   1  [ ] A\n   2  [x] B\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
