package transform

import (
	"fmt"
	"strings"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/types"
)

var severityTierTable = map[string]string{
	"mild":     types.AbonnementFreemium,
	"moderate": types.AbonnementPremium,
	"severe":   types.AbonnementPremiumPlus,
}

// DietRecoUsers maps the Diet Recommendations dataset onto the utilisateurs
// schema. Patient_ID carries a stable identity, so the pseudo-email is derived
// from it instead of the row position.
func DietRecoUsers(f *frame.Frame, log *logger.Logger) *frame.Frame {
	out := frame.New("email", "nom", "prenom", "age", "sexe", "poids", "taille", "type_abonnement", "objectifs")
	for i, row := range f.Rows {
		patientID, ok := asString(row["Patient_ID"])
		if !ok || strings.TrimSpace(patientID) == "" {
			continue
		}
		sexe := normalizeSexe(row["Gender"])
		out.Append(frame.Row{
			"email":           fmt.Sprintf("%s@healthai.com", strings.ToLower(strings.TrimSpace(patientID))),
			"nom":             nomFor(i),
			"prenom":          prenomFor(sexe, i),
			"age":             cellOrNil(toInt(row["Age"])),
			"sexe":            sexe,
			"poids":           cellOrNil(measurement(row["Weight_kg"], 1)),
			"taille":          cellOrNil(measurement(row["Height_cm"], 1)),
			"type_abonnement": severityTier(row["Severity"]),
			"objectifs":       dietGoals(row["Diet_Recommendation"]),
		})
	}
	log.Info("Transformed utilisateurs from diet recommendations dataset", "rows", out.Len())
	return out
}

func severityTier(v any) string {
	s, ok := asString(v)
	if !ok {
		return types.AbonnementFreemium
	}
	if tier, found := severityTierTable[strings.ToLower(strings.TrimSpace(s))]; found {
		return tier
	}
	return types.AbonnementFreemium
}

func dietGoals(v any) []string {
	reco, ok := asString(v)
	if !ok || strings.TrimSpace(reco) == "" {
		return []string{"santé"}
	}
	return []string{strings.TrimSpace(reco)}
}
