package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/ayursetu/ayur-hub/internal/catalog"
	"github.com/ayursetu/ayur-hub/internal/dietplan"
	"github.com/ayursetu/ayur-hub/internal/patients"
	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// Display labels for the seven meal slots, in serving order.
var slotLabels = []struct {
	Key   string
	Label string
}{
	{"earlyMorning", "Early Morning"},
	{"breakfast", "Breakfast"},
	{"midMorning", "Mid Morning"},
	{"lunch", "Lunch"},
	{"evening", "Evening"},
	{"dinner", "Dinner"},
	{"bedtime", "Bedtime"},
}

// Generator renders PDF/CSV reports of a patient's weekly diet plan
type Generator struct {
	plansStorage   storage.DietPlansStorage
	patientStorage PatientStorage
	catalog        *catalog.Catalog
}

// NewGenerator creates a new report generator
func NewGenerator(plansStorage storage.DietPlansStorage, patientStorage PatientStorage, cat *catalog.Catalog) *Generator {
	return &Generator{
		plansStorage:   plansStorage,
		patientStorage: patientStorage,
		catalog:        cat,
	}
}

// GenerateReport generates a report and returns the data
func (g *Generator) GenerateReport(ctx context.Context, req CreateReportRequest) ([]byte, error) {
	patient, err := g.patientStorage.GetPatient(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient not found")
	}

	plan, err := g.loadPlan(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load diet plan: %w", err)
	}

	switch req.Format {
	case FormatPDF:
		return g.generatePDF(patient, plan)
	case FormatCSV:
		return g.generateCSV(plan)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
}

// loadPlan fetches and decodes the patient's persisted weekly plan.
// A patient without a saved plan gets an empty well-formed one.
func (g *Generator) loadPlan(ctx context.Context, patientID uuid.UUID) (dietplan.WeeklyPlan, error) {
	rec, found, err := g.plansStorage.GetDietPlan(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !found {
		return dietplan.NewEmptyPlan(), nil
	}

	var plan dietplan.WeeklyPlan
	if err := json.Unmarshal(rec.Payload, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan payload: %w", err)
	}
	return dietplan.Normalize(plan), nil
}

// generateCSV generates a CSV export of the weekly plan, one row per entry
func (g *Generator) generateCSV(plan dietplan.WeeklyPlan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"day", "meal", "food", "quantity", "notes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, day := range dietplan.Weekdays {
		for _, slot := range slotLabels {
			for _, entry := range plan[day][slot.Key] {
				row := []string{day, slot.Label, g.foodName(entry), entry.Quantity, entry.Notes}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// generatePDF generates the full patient report: overview, dosha analysis,
// weekly diet plan, nutritional guidelines
func (g *Generator) generatePDF(patient *storage.Patient, plan dietplan.WeeklyPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "Ayurvedic Health Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Comprehensive Patient Analysis & Diet Plan")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	// Patient overview
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, patient.Name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%d years, %s", patient.Age, patient.Gender))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Prakriti: %s", patient.Prakriti))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Height: %.0f cm    Weight: %.0f kg    BMI: %s", patient.HeightCm, patient.WeightKg, bmiString(patient)))
	pdf.Ln(10)

	// Dosha balance
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Dosha Balance")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Vata: %d%%    Pitta: %d%%    Kapha: %d%%", patient.VataPct, patient.PittaPct, patient.KaphaPct))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	analysis := doshaAnalysis(patient)
	lines := pdf.SplitText(analysis, 170)
	for _, line := range lines {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(3)

	// Recommendations
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Recommendations")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range doshaRecommendations(patient) {
		pdf.Cell(0, 5, "- "+rec)
		pdf.Ln(5)
	}

	// Weekly diet plan
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Weekly Diet Plan - %s", patient.Name))
	pdf.Ln(12)

	for _, day := range dietplan.Weekdays {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFillColor(34, 197, 94)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, day, "", 1, "L", true, 0, "")
		pdf.SetTextColor(31, 41, 55)
		pdf.Ln(1)

		for _, slot := range slotLabels {
			entries := plan[day][slot.Key]
			if len(entries) == 0 {
				continue
			}

			pdf.SetFont("Helvetica", "B", 9)
			pdf.Cell(0, 6, slot.Label)
			pdf.Ln(5)

			pdf.SetFont("Helvetica", "", 9)
			for _, entry := range entries {
				line := fmt.Sprintf("- %s - %s", g.foodName(entry), entry.Quantity)
				if entry.Notes != "" {
					line += fmt.Sprintf(" (%s)", entry.Notes)
				}
				pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	// Nutritional guidelines
	if pdf.GetY() > 230 {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Nutritional Guidelines")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	for _, guideline := range nutritionalGuidelines {
		pdf.Cell(0, 5, "- "+guideline)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// foodName resolves an entry's food id to its catalog name
func (g *Generator) foodName(entry dietplan.DietEntry) string {
	if rec, ok := g.catalog.ByID(entry.FoodID); ok {
		return rec.Name
	}
	return entry.FoodID
}

func bmiString(patient *storage.Patient) string {
	bmi, err := patients.CalculateBMI(patient.HeightCm, patient.WeightKg)
	if err != nil {
		return "n/a"
	}
	rounded := math.Round(bmi*10) / 10
	return fmt.Sprintf("%.1f (%s)", rounded, patients.BMICategory(rounded))
}

// doshaAnalysis describes the patient's dominant dosha
func doshaAnalysis(patient *storage.Patient) string {
	name, pct := dominantDosha(patient)
	return fmt.Sprintf("Your dominant dosha is %s at %d%%. This reflects your natural constitution and current state of balance. Understanding your dosha helps in making appropriate lifestyle and dietary choices.", name, pct)
}

func dominantDosha(patient *storage.Patient) (string, int) {
	name, pct := "Vata", patient.VataPct
	if patient.PittaPct > pct {
		name, pct = "Pitta", patient.PittaPct
	}
	if patient.KaphaPct > pct {
		name, pct = "Kapha", patient.KaphaPct
	}
	return name, pct
}

func doshaRecommendations(patient *storage.Patient) []string {
	name, _ := dominantDosha(patient)
	switch name {
	case "Pitta":
		return []string{
			"Choose cooling foods and avoid excessive heat",
			"Practice moderation and avoid overexertion",
			"Include sweet, bitter, and astringent tastes",
			"Maintain calm environment and regular relaxation",
		}
	case "Kapha":
		return []string{
			"Engage in regular physical activity",
			"Choose light, warm, and spicy foods",
			"Include pungent, bitter, and astringent tastes",
			"Maintain active lifestyle and avoid excessive sleep",
		}
	default:
		return []string{
			"Maintain regular meal times and warm, cooked foods",
			"Practice grounding activities like yoga and meditation",
			"Ensure adequate rest and avoid overstimulation",
			"Include healthy fats and sweet, sour, salty tastes",
		}
	}
}

var nutritionalGuidelines = []string{
	"Eat meals slowly and mindfully in a calm environment",
	"Drink minimal water during meals, more between meals",
	"Prioritize fresh, seasonal, and locally sourced foods",
	"Allow time for rest and digestion after eating",
	"Follow the principle of eating until 75% full",
	"Maintain consistent meal timing throughout the week",
}

// PatientStorage interface for generator
type PatientStorage interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*storage.Patient, error)
}
