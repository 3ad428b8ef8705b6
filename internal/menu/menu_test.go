package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/okamoto/staff-records/internal/console"
	"github.com/okamoto/staff-records/internal/models"
)

const menuText = "\n===== Staff Management System =====\n" +
	"1. Teacher\n2. Typist (Regular / Casual)\n3. Officer\n" +
	"Enter your choice: "

const typistMenuText = "\n1. Regular Typist\n2. Casual Typist\nEnter type: "

func run(t *testing.T, input string) (models.Record, string, error) {
	t.Helper()
	var out bytes.Buffer
	m := NewMenu(console.New(strings.NewReader(input), &out, 6), zap.NewNop())
	record, err := m.Run()
	return record, out.String(), err
}

func TestRunTeacher(t *testing.T) {
	record, out, err := run(t, "1 John 5 Math IEEE")
	require.NoError(t, err)

	teacher, ok := record.(*models.Teacher)
	require.True(t, ok)
	assert.Equal(t, "John", teacher.Name)
	assert.Equal(t, "IEEE", teacher.Publication)

	assert.Contains(t, out, "--- Teacher Details ---\nName: John\nID: 5\nSubject: Math\nPublication: IEEE\n")
}

func TestRunRegularTypist(t *testing.T) {
	record, out, err := run(t, "2\n1\nAmy\n9\n60\n5000\n")
	require.NoError(t, err)
	assert.Equal(t, models.KindRegular, record.Kind())

	assert.Contains(t, out, "--- Regular Typist Details ---")
	assert.Contains(t, out, "Typing Speed: 60 wpm")
	assert.Contains(t, out, "Salary: 5000")
}

func TestRunCasualTypist(t *testing.T) {
	record, out, err := run(t, "2 2 Raj 3 45 350.5")
	require.NoError(t, err)
	assert.Equal(t, models.KindCasual, record.Kind())
	assert.Contains(t, out, "--- Casual Typist Details ---\nName: Raj\nID: 3\nTyping Speed: 45 wpm\nDaily Wages: 350.5\n")
}

func TestRunOfficer(t *testing.T) {
	record, out, err := run(t, "3 Lee 12 A")
	require.NoError(t, err)
	assert.Equal(t, models.KindOfficer, record.Kind())
	assert.Contains(t, out, "--- Officer Details ---\nName: Lee\nID: 12\nGrade: A\n")
}

func TestRunReadsAndDisplaysOnce(t *testing.T) {
	_, out, err := run(t, "3 Lee 12 A")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Enter Employee Name: "))
	assert.Equal(t, 1, strings.Count(out, "--- Officer Details ---"))
}

func TestRunInvalidChoice(t *testing.T) {
	for _, input := range []string{"4", "0", "-1", "abc", ""} {
		t.Run(input, func(t *testing.T) {
			record, out, err := run(t, input+" John 5")
			require.ErrorIs(t, err, ErrInvalidChoice)
			assert.Nil(t, record)
			assert.Equal(t, menuText+"Invalid choice!\n", out)
		})
	}
}

func TestRunInvalidTypistChoice(t *testing.T) {
	record, out, err := run(t, "2 3 Amy 9")
	require.ErrorIs(t, err, ErrInvalidTypistChoice)
	assert.Nil(t, record)
	assert.Equal(t, menuText+typistMenuText+"Invalid Typist Choice!\n", out)
	assert.NotContains(t, out, "Enter Employee Name: ")
	assert.NotContains(t, out, "Details")
}

func TestRunRegularTypistTranscript(t *testing.T) {
	_, out, err := run(t, "2 1 Amy 9 60 5000")
	require.NoError(t, err)

	want := menuText + typistMenuText +
		"Enter Employee Name: Enter Employee ID: " +
		"Enter Typing Speed (words per minute): Enter Salary: " +
		"\n--- Regular Typist Details ---\n" +
		"Name: Amy\nID: 9\nTyping Speed: 60 wpm\nSalary: 5000\n"
	assert.Equal(t, want, out)
}

func TestRunTeacherPrompts(t *testing.T) {
	_, out, err := run(t, "1 John 5 Math IEEE")
	require.NoError(t, err)
	assert.Equal(t, menuText+
		"Enter Employee Name: Enter Employee ID: Enter Subject: Enter Publication: "+
		"\n--- Teacher Details ---\nName: John\nID: 5\nSubject: Math\nPublication: IEEE\n",
		out)
}
