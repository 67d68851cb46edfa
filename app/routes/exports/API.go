package exports

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

const exportLimit = 10000

var studentHeader = []string{"Name", "Phone", "Parent Phone", "School", "Grade", "Gender", "Active", "Registered"}

func studentRow(s *models.Student) []string {
	gender := ""
	if s.Gender != nil {
		gender = string(*s.Gender)
	}
	active := "no"
	if s.IsActive {
		active = "yes"
	}
	return []string{
		s.Name, s.Phone, s.ParentPhone, s.School, s.GradeLevel,
		gender, active, s.CreatedAt.Format("2006-01-02"),
	}
}

// ExportStudentsAPI streams the student roster as a download. The
// format query selects csv or xlsx, defaulting to xlsx.
func ExportStudentsAPI(c *fiber.Ctx) error {
	filters := models.StudentFilters{
		Status:    c.Query("status"),
		SeasonID:  c.Query("season_id"),
		SortBy:    "name",
		SortOrder: "asc",
		Limit:     exportLimit,
	}
	students, _, err := database.GetStudents(config.GetDB(), auth.AcademyID(c), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, studentRow(s))
	}

	name := "students_" + time.Now().Format("20060102")
	if c.Query("format") == "csv" {
		return sendCSV(c, name, studentHeader, rows)
	}
	return sendXLSX(c, name, "Students", studentHeader, rows)
}

var instructorHeader = []string{"Name", "Phone", "Email", "Subject", "Hired", "Active"}

func ExportInstructorsAPI(c *fiber.Ctx) error {
	instructors, err := database.GetInstructors(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch instructors"})
	}

	rows := make([][]string, 0, len(instructors))
	for _, in := range instructors {
		hired := ""
		if in.HiredAt != nil {
			hired = in.HiredAt.Format("2006-01-02")
		}
		active := "no"
		if in.IsActive {
			active = "yes"
		}
		rows = append(rows, []string{in.Name, in.Phone, in.Email, in.Subject, hired, active})
	}

	name := "instructors_" + time.Now().Format("20060102")
	if c.Query("format") == "csv" {
		return sendCSV(c, name, instructorHeader, rows)
	}
	return sendXLSX(c, name, "Instructors", instructorHeader, rows)
}

var paymentHeader = []string{"Student", "Amount", "Method", "Status", "Paid At", "Memo"}

func ExportPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetPayments(config.GetDB(), auth.AcademyID(c),
		c.Query("student_id"), c.Query("status"), c.Query("month"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		studentName := ""
		if p.Student != nil {
			studentName = p.Student.Name
		}
		rows = append(rows, []string{
			studentName, strconv.FormatInt(p.Amount, 10),
			string(p.Method), string(p.Status),
			p.PaidAt.Format("2006-01-02"), p.Memo,
		})
	}

	name := "payments_" + time.Now().Format("20060102")
	if c.Query("format") == "csv" {
		return sendCSV(c, name, paymentHeader, rows)
	}
	return sendXLSX(c, name, "Payments", paymentHeader, rows)
}

func sendCSV(c *fiber.Ctx, name string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(header)
	for _, row := range rows {
		w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`.csv"`)
	return c.Send(buf.Bytes())
}

func sendXLSX(c *fiber.Ctx, name, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheet)
	writeSheetRow(f, sheet, 1, header)
	for i, row := range rows {
		writeSheetRow(f, sheet, i+2, row)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`.xlsx"`)
	return c.Send(buf.Bytes())
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, values []string) {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	cell, _ := excelize.CoordinatesToCellName(1, rowNum)
	f.SetSheetRow(sheet, cell, &cells)
}
