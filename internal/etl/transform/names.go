package transform

// Fixed name pools for synthesized identities. Assignment is positional, never
// random, so the same input file always produces the same people.
var prenomsM = []string{
	"Thomas", "Nicolas", "Julien", "Alexandre", "Pierre", "Antoine", "Maxime", "Romain", "Lucas", "Hugo",
	"Mathieu", "Quentin", "Clément", "Adrien", "Baptiste", "Florian", "Guillaume", "Kevin", "Yann", "Sébastien",
}

var prenomsF = []string{
	"Marie", "Sophie", "Julie", "Camille", "Laura", "Lucie", "Emma", "Léa", "Manon", "Chloé",
	"Pauline", "Élodie", "Clara", "Inès", "Charlotte", "Alice", "Sarah", "Anaïs", "Océane", "Marion",
}

var noms = []string{
	"Martin", "Bernard", "Thomas", "Petit", "Robert", "Richard", "Durand", "Dubois", "Moreau", "Laurent",
	"Simon", "Michel", "Lefebvre", "Leroy", "Roux", "David", "Bertrand", "Morel", "Fournier", "Girard",
}

func prenomFor(sexe string, index int) string {
	if sexe == "F" {
		return prenomsF[index%len(prenomsF)]
	}
	return prenomsM[index%len(prenomsM)]
}

func nomFor(index int) string {
	return noms[index%len(noms)]
}
