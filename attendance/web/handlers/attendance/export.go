package attendance

import (
	"fmt"
	"log"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	common "attendly.com/attendly/attendance/web/common"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var exportHeaders = []string{"Record ID", "User ID", "Date", "Check In", "Check Out", "Status", "Total Hours", "Notes"}

// BuildAttendanceWorkbook renders records into a spreadsheet, one row
// per record under a fixed header row.
func BuildAttendanceWorkbook(records []model.AttendanceRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, r := range records {
		checkOut := ""
		if r.CheckOut != nil {
			checkOut = r.CheckOut.Format("2006-01-02 15:04:05")
		}
		var totalHours interface{}
		if r.TotalHours != nil {
			totalHours = *r.TotalHours
		}

		values := []interface{}{
			r.ID,
			r.UserID,
			r.Date.Format(attendance.DateLayout),
			r.CheckIn.Format("2006-01-02 15:04:05"),
			checkOut,
			r.Status,
			totalHours,
			r.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Export streams an XLSX report of all records in the requested range.
func (ep *Endpoint) Export(c *gin.Context) {
	startDate, endDate, ok := dateRange(c)
	if !ok {
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	records, _, err := attendance.ListAll(db, startDate, endDate, 100000, 0)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	f, err := BuildAttendanceWorkbook(records)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	filename := "attendance.xlsx"
	if startDate != nil && endDate != nil {
		filename = fmt.Sprintf("attendance_%s_%s.xlsx", *startDate, *endDate)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		// headers are already sent at this point
		log.Printf("failed to stream attendance export: %v", err)
	}
}
