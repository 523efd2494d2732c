package report

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// ErrRenderFailed marks a malformed snapshot reaching the renderer. Should
// be unreachable when validation ran first; callers abort the render and
// show a generic message.
var ErrRenderFailed = errors.New("report rendering failed")

// Boilerplate for the report body. The opinion paragraph depends on whether
// any absence survived blank-name filtering.
const (
	resultWithAbsences = "وجود حالات غياب بدون إذن وهم كالآتي:-"
	resultNoAbsences   = "عدم وجود حالات غياب عن الشئونية في ذات يوم المرور"

	opinionReferral = "إحالة التقرير لإدارة الشئون القانونية بالمديرية لإعمال شئونها حيال حالات الغياب عن العمل بدون إذن كما هو موضح بصدر التقرير."
	opinionFiled    = "حفظ التقرير لعدم وجود حالات غياب عن الشئونية"

	countNone = "لا يوجد"
)

// Config parameterizes the constant header and signature blocks.
type Config struct {
	MinistryName   string
	DepartmentName string
	ReportTitle    string
	ReportSubtitle string
	ManagerName    string
}

// DefaultConfig returns the directorate boilerplate the printed form carries.
func DefaultConfig() Config {
	return Config{
		MinistryName:   "مديرية الشئون الصحية بالغربية",
		DepartmentName: "إدارة المراجعة الداخلية والحوكمة",
		ReportTitle:    "تقرير مرور",
		ReportSubtitle: "للعرض علي السيد الدكتور/ وكيل الوزارة",
		ManagerName:    "أ/عبدالله الجبالي",
	}
}

// Renderer maps an inspection snapshot to a report document. It is
// stateless given its input; rendering never mutates the record.
type Renderer struct {
	cfg    Config
	tmpl   *template.Template
	logger *zap.Logger
}

// NewRenderer creates a renderer with the given boilerplate configuration.
func NewRenderer(cfg Config, logger *zap.Logger) *Renderer {
	return &Renderer{
		cfg:    cfg,
		tmpl:   template.Must(template.New("report").Parse(reportTemplate)),
		logger: logger,
	}
}

type templateData struct {
	Config
	InspectorName string
	Location      string
	FormattedDate string
	FormattedTime string
	HasAbsences   bool
	CountDisplay  string
	ResultLine    string
	Opinion       string
	Rows          []models.TableRow
}

// Render produces the report document for one snapshot. User-controlled
// strings pass through html/template's contextual escaping; an execution
// failure is internal and aborts the render.
func (r *Renderer) Render(record models.InspectionRecord) (models.ReportDocument, error) {
	hasAbsences := len(record.Absences) > 0

	data := templateData{
		Config:        r.cfg,
		InspectorName: record.InspectorName,
		Location:      record.Location,
		FormattedDate: FormatArabicDate(record.Date),
		FormattedTime: FormatTime(record.Time),
		HasAbsences:   hasAbsences,
		CountDisplay:  countNone,
		ResultLine:    resultNoAbsences,
		Opinion:       opinionFiled,
		Rows:          BuildRows(record.Absences),
	}
	if hasAbsences {
		data.CountDisplay = strconv.Itoa(len(record.Absences))
		data.ResultLine = resultWithAbsences
		data.Opinion = opinionReferral
	}

	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, data); err != nil {
		r.logger.Error("Failed to execute report template", zap.Error(err))
		return models.ReportDocument{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return models.ReportDocument{
		HTML:          buf.String(),
		HasAbsences:   hasAbsences,
		AbsenceCount:  len(record.Absences),
		FormattedDate: data.FormattedDate,
		FormattedTime: data.FormattedTime,
		Rows:          data.Rows,
	}, nil
}

const reportTemplate = `<div class="report-header">
    <div class="ministry-name">{{.MinistryName}}</div>
    <div class="department-name">{{.DepartmentName}}</div>
    <div class="report-title">{{.ReportTitle}}</div>
    <div class="report-subtitle">{{.ReportSubtitle}}</div>
</div>
<div class="report-info-section">
    <table class="info-table">
        <tr>
            <td class="highlight"><strong>اسم القائم بالمرور:</strong><br>{{.InspectorName}}</td>
            <td class="highlight"><strong>الجهة:</strong><br>{{.Location}}</td>
            <td><strong>مفتش بإدارة الحوكمة بالمديرية</strong></td>
        </tr>
    </table>
    <table class="info-table">
        <tr>
            <td class="highlight"><strong>الساعة:</strong><br>{{.FormattedTime}}</td>
            <td class="highlight"><strong>تاريخ المرور:</strong><br>{{.FormattedDate}}</td>
            <td></td>
        </tr>
    </table>
</div>
<div class="result-section">
    <div class="result-title">نتيجة المرور:</div>
    <div class="result-box">
        <strong>بالمرور علي {{.Location}}</strong><br>
        <strong>لعمل انضباط إداري للعاملين تبين لنا:</strong>
        {{.ResultLine}}
        <div style="text-align: center; margin: 6mm 0;">
            <span class="cases-count-box">
                <strong>عدد الحالات:- {{.CountDisplay}}</strong>
            </span>
        </div>
    </div>
    <table class="absence-table" dir="rtl">
        <thead>
            <tr>
                <th style="width: 10%">م</th>
                <th style="width: 23%">الوظيفة</th>
                <th style="width: 30%">الاسم</th>
                <th style="width: 12%">عدد الحالات</th>
                <th style="width: 25%">ملاحظات</th>
            </tr>
        </thead>
        <tbody>
        {{- range .Rows}}
            <tr>
                <td><strong>{{.Index}}</strong></td>
                <td>{{.Position}}</td>
                <td>{{.Name}}</td>
                <td>{{if .Empty}}{{else}}{{.CaseCount}}{{end}}</td>
                <td>{{.Annotation}}</td>
            </tr>
        {{- end}}
        </tbody>
    </table>
</div>
<div class="opinion-section">
    <div class="result-title">الرأي:</div>
    <div class="opinion-box">{{.Opinion}}</div>
    <div class="closing-statement">
        <strong>والأمر معروض ومفوض لسيادتكم،،</strong><br>
        <strong>وتفضلوا سيادتكم بقبول وافر التقدير والاحترام،</strong>
    </div>
</div>
<div class="signatures-section">
    <div class="signature-box">
        <div class="signature-title">مدير الإدارة</div>
        <div class="signature-name">{{.ManagerName}}</div>
    </div>
    <div class="signature-box">
        <div class="signature-title">مفتش مالي وإداري</div>
        <div class="signature-name">{{.InspectorName}}</div>
    </div>
</div>
`
