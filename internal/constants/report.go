package constants

// ReportFields is the canonical column set of a work log report. Source rows
// may carry more, only these survive projection, in this order.
var ReportFields = []string{
	"Number",
	"Daily Work Description",
	"Hr",
	"Min",
	"Complete",
	"Follow up",
	"Supervisor Comments",
}

const (
	FieldNumber      = "Number"
	FieldDescription = "Daily Work Description"
	FieldHours       = "Hr"
	FieldMinutes     = "Min"
	FieldComplete    = "Complete"
	FieldFollowUp    = "Follow up"
	FieldComments    = "Supervisor Comments"
)

const (
	TotalSheetName    = "Total"
	SheetNameLayout   = "01-02-2006" // MM-DD-YYYY, tab names in the workbook
	DateLayout        = "2006-01-02"
	DailyHoursLabel   = "8.00" // fixed reference shown next to the date line
	DefaultOffice     = "LA Office"
	DefaultDepartment = "Sales"
)

// Workbook palette (hex, no leading #).
const (
	ColorTitleFill     = "005A9E"
	ColorHeaderFill    = "007ACC"
	ColorHighlightFill = "FFD966"
	ColorLabelFill     = "F2F2F2"
	ColorBandFill      = "F9F9F9"
	ColorWhite         = "FFFFFF"
)
