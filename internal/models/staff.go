package models

import (
	"github.com/okamoto/staff-records/internal/console"
)

// Staff holds the fields shared by every record
type Staff struct {
	Name string
	ID   int
}

// Base returns the shared staff fields
func (s *Staff) Base() *Staff {
	return s
}

func (s *Staff) input(c *console.Console) {
	c.Prompt("Enter Employee Name: ")
	s.Name = c.ReadString()
	c.Prompt("Enter Employee ID: ")
	s.ID = c.ReadInt()
}

func (s *Staff) display(c *console.Console) {
	c.Printf("Name: %s\n", s.Name)
	c.Printf("ID: %d\n", s.ID)
}

// Teacher is a staff member with a subject and a publication
type Teacher struct {
	Staff
	Subject     string
	Publication string
}

// Kind returns KindTeacher.
func (t *Teacher) Kind() Kind { return KindTeacher }

// Input reads the staff fields, then subject and publication.
func (t *Teacher) Input(c *console.Console) {
	t.Staff.input(c)
	c.Prompt("Enter Subject: ")
	t.Subject = c.ReadString()
	c.Prompt("Enter Publication: ")
	t.Publication = c.ReadString()
}

// Display prints the teacher header and all fields.
func (t *Teacher) Display(c *console.Console) {
	c.Println()
	c.Println("--- Teacher Details ---")
	t.Staff.display(c)
	c.Printf("Subject: %s\n", t.Subject)
	c.Printf("Publication: %s\n", t.Publication)
}

// Typist adds typing speed in words per minute. It is only used embedded in
// Regular and Casual.
type Typist struct {
	Staff
	Speed int
}

func (t *Typist) input(c *console.Console) {
	t.Staff.input(c)
	c.Prompt("Enter Typing Speed (words per minute): ")
	t.Speed = c.ReadInt()
}

func (t *Typist) display(c *console.Console) {
	t.Staff.display(c)
	c.Printf("Typing Speed: %d wpm\n", t.Speed)
}

// Regular is a salaried typist
type Regular struct {
	Typist
	Salary float64
}

// Kind returns KindRegular.
func (r *Regular) Kind() Kind { return KindRegular }

// Input reads the typist fields, then the salary.
func (r *Regular) Input(c *console.Console) {
	r.Typist.input(c)
	c.Prompt("Enter Salary: ")
	r.Salary = c.ReadFloat()
}

// Display prints the regular typist header and all fields.
func (r *Regular) Display(c *console.Console) {
	c.Println()
	c.Println("--- Regular Typist Details ---")
	r.Typist.display(c)
	c.Printf("Salary: %s\n", c.FormatFloat(r.Salary))
}

// Casual is a typist paid a daily wage
type Casual struct {
	Typist
	DailyWages float64
}

// Kind returns KindCasual.
func (cs *Casual) Kind() Kind { return KindCasual }

// Input reads the typist fields, then the daily wage.
func (cs *Casual) Input(c *console.Console) {
	cs.Typist.input(c)
	c.Prompt("Enter Daily Wages: ")
	cs.DailyWages = c.ReadFloat()
}

// Display prints the casual typist header and all fields.
func (cs *Casual) Display(c *console.Console) {
	c.Println()
	c.Println("--- Casual Typist Details ---")
	cs.Typist.display(c)
	c.Printf("Daily Wages: %s\n", c.FormatFloat(cs.DailyWages))
}

// Officer is a staff member with a grade
type Officer struct {
	Staff
	Grade string
}

// Kind returns KindOfficer.
func (o *Officer) Kind() Kind { return KindOfficer }

// Input reads the staff fields, then the grade.
func (o *Officer) Input(c *console.Console) {
	o.Staff.input(c)
	c.Prompt("Enter Grade: ")
	o.Grade = c.ReadString()
}

// Display prints the officer header and all fields.
func (o *Officer) Display(c *console.Console) {
	c.Println()
	c.Println("--- Officer Details ---")
	o.Staff.display(c)
	c.Printf("Grade: %s\n", o.Grade)
}
