package statements

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Taxonomy is the static classification table of one statement family: a
// tree of categories, sub-categories and leaf lines, each leaf naming the
// account-code prefixes it aggregates. Taxonomies are configuration data,
// not code; the PCG tables ship embedded in the binary and are validated
// once at load time.
type Taxonomy struct {
	Version    int                `yaml:"version"`
	Statement  string             `yaml:"statement"`
	Categories []TaxonomyCategory `yaml:"categories"`
}

// TaxonomyCategory is a "grande masse" (e.g. ACTIF IMMOBILISE).
type TaxonomyCategory struct {
	Label         string                `yaml:"label"`
	SubCategories []TaxonomySubCategory `yaml:"subcategories"`
}

// TaxonomySubCategory is a "sous-masse" (e.g. Stocks, Trésorerie).
type TaxonomySubCategory struct {
	Label string         `yaml:"label"`
	Lines []TaxonomyLine `yaml:"lines"`
}

// TaxonomyLine is one named line item with its account-code prefixes.
type TaxonomyLine struct {
	Label    string   `yaml:"label"`
	Prefixes []string `yaml:"prefixes"`
}

//go:embed taxonomy/*.yaml
var taxonomyFS embed.FS

// The three PCG statement taxonomies, loaded and validated at startup.
var (
	BilanActif       = mustLoadTaxonomy("taxonomy/bilan_actif.yaml")
	BilanPassif      = mustLoadTaxonomy("taxonomy/bilan_passif.yaml")
	CompteDeResultat = mustLoadTaxonomy("taxonomy/compte_de_resultat.yaml")
)

// ParseTaxonomy decodes and validates a taxonomy document.
func ParseTaxonomy(data []byte) (Taxonomy, error) {
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return Taxonomy{}, fmt.Errorf("parsing taxonomy: %w", err)
	}
	if err := tax.Validate(); err != nil {
		return Taxonomy{}, err
	}
	return tax, nil
}

func mustLoadTaxonomy(name string) Taxonomy {
	data, err := taxonomyFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy %s: %v", name, err))
	}
	tax, err := ParseTaxonomy(data)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy %s: %v", name, err))
	}
	return tax
}

// Validate checks structural soundness and that the prefixes of distinct
// leaves are mutually exclusive: no prefix of one leaf may be equal to, or
// a string prefix of, a prefix of another leaf. Overlapping prefixes would
// double-count account balances across lines.
func (t Taxonomy) Validate() error {
	if t.Statement == "" {
		return fmt.Errorf("taxonomy has no statement name")
	}
	if t.Version < 1 {
		return fmt.Errorf("taxonomy %s: missing version", t.Statement)
	}

	type owner struct {
		prefix string
		leaf   string
	}
	var owners []owner
	for _, cat := range t.Categories {
		for _, sub := range cat.SubCategories {
			for _, line := range sub.Lines {
				if len(line.Prefixes) == 0 {
					return fmt.Errorf("taxonomy %s: line %q has no prefixes", t.Statement, line.Label)
				}
				for _, p := range line.Prefixes {
					if p == "" {
						return fmt.Errorf("taxonomy %s: line %q has an empty prefix", t.Statement, line.Label)
					}
					owners = append(owners, owner{prefix: p, leaf: line.Label})
				}
			}
		}
	}

	for i, a := range owners {
		for _, b := range owners[i+1:] {
			if a.leaf == b.leaf {
				continue
			}
			if strings.HasPrefix(a.prefix, b.prefix) || strings.HasPrefix(b.prefix, a.prefix) {
				return fmt.Errorf("taxonomy %s: prefix %q (%s) overlaps prefix %q (%s)",
					t.Statement, a.prefix, a.leaf, b.prefix, b.leaf)
			}
		}
	}
	return nil
}

// AllPrefixes returns every leaf prefix of the taxonomy.
func (t Taxonomy) AllPrefixes() []string {
	var prefixes []string
	for _, cat := range t.Categories {
		for _, sub := range cat.SubCategories {
			for _, line := range sub.Lines {
				prefixes = append(prefixes, line.Prefixes...)
			}
		}
	}
	return prefixes
}

// contraPrefixes derives the paired contra-account prefixes carrying
// depreciation and provisions for a leaf: 2xx becomes 28xx, anything else
// gains a trailing 9 (39x, 49x, 59x provision accounts).
func contraPrefixes(prefixes []string) []string {
	contra := make([]string, len(prefixes))
	for i, p := range prefixes {
		if strings.HasPrefix(p, "2") {
			contra[i] = "28" + p[1:]
		} else {
			contra[i] = p + "9"
		}
	}
	return contra
}
