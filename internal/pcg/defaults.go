package pcg

import "github.com/liasse-dev/liasse/internal/model"

// DefaultChart returns the starter plan comptable for an entity type. Only
// small commercial entities are supported today; unknown types fall back to
// the same chart.
func DefaultChart(entityType string) []model.Account {
	switch entityType {
	case "societe_commerciale":
		return societeCommercialeChart()
	default:
		return societeCommercialeChart()
	}
}

func societeCommercialeChart() []model.Account {
	return []model.Account{
		{Code: "101000", Label: "Capital", Description: "Capital social"},
		{Code: "106100", Label: "Réserve légale"},
		{Code: "106800", Label: "Autres réserves"},
		{Code: "110000", Label: "Report à nouveau (solde créditeur)"},
		{Code: "120000", Label: "Résultat de l'exercice"},
		{Code: "164000", Label: "Emprunts auprès des établissements de crédit"},
		{Code: "205000", Label: "Concessions, brevets, licences"},
		{Code: "213000", Label: "Constructions"},
		{Code: "215000", Label: "Installations techniques, matériel et outillage"},
		{Code: "218300", Label: "Matériel de bureau et informatique"},
		{Code: "281500", Label: "Amortissements des installations techniques"},
		{Code: "281830", Label: "Amortissements du matériel de bureau et informatique"},
		{Code: "311000", Label: "Matières premières"},
		{Code: "370000", Label: "Stocks de marchandises"},
		{Code: "401000", Label: "Fournisseurs"},
		{Code: "404000", Label: "Fournisseurs d'immobilisations"},
		{Code: "411000", Label: "Clients"},
		{Code: "421000", Label: "Personnel - rémunérations dues"},
		{Code: "431000", Label: "Sécurité sociale"},
		{Code: "445660", Label: "TVA déductible sur autres biens et services"},
		{Code: "445710", Label: "TVA collectée"},
		{Code: "471000", Label: "Comptes d'attente", Description: "Mouvements importés en attente d'affectation"},
		{Code: "512000", Label: "Banque"},
		{Code: "530000", Label: "Caisse"},
		{Code: "601000", Label: "Achats de matières premières"},
		{Code: "606400", Label: "Fournitures administratives"},
		{Code: "607000", Label: "Achats de marchandises"},
		{Code: "613200", Label: "Locations immobilières"},
		{Code: "622600", Label: "Honoraires"},
		{Code: "626000", Label: "Frais postaux et télécommunications"},
		{Code: "641000", Label: "Salaires et traitements"},
		{Code: "645000", Label: "Charges de sécurité sociale et de prévoyance"},
		{Code: "661100", Label: "Intérêts des emprunts"},
		{Code: "681100", Label: "Dotations aux amortissements des immobilisations"},
		{Code: "701000", Label: "Ventes de produits finis"},
		{Code: "706000", Label: "Prestations de services"},
		{Code: "707000", Label: "Ventes de marchandises"},
		{Code: "764000", Label: "Revenus des valeurs mobilières de placement"},
	}
}
