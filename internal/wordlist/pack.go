package wordlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pack is a loadable keyword set definition for one language. Each field is
// a whitespace-separated word list; Functions uses the '(' abbreviation
// marker form.
type Pack struct {
	Keywords  string `yaml:"keywords"`
	Keywords2 string `yaml:"keywords2"`
	Functions string `yaml:"functions"`
}

// LoadPack reads a keyword pack from a YAML file.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyword pack: %w", err)
	}
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing keyword pack %s: %w", path, err)
	}
	return &p, nil
}

// Lists builds the three lookup lists from the pack.
func (p *Pack) Lists() (keywords, keywords2, functions *List) {
	return New(p.Keywords), New(p.Keywords2), New(p.Functions)
}

// DefaultSQL returns the built-in SQL keyword pack.
func DefaultSQL() *Pack {
	return &Pack{
		Keywords: "all alter and any as asc begin between by case cascade check commit " +
			"create cross declare default delete desc distinct drop else elsif end endif " +
			"exception exists exit for foreign from full function grant group having if in " +
			"inner insert intersect into is join key left like limit loop matched merge " +
			"minus natural not null on or order outer package primary procedure references " +
			"repeat return revoke right rollback select set start table then to truncate " +
			"union unique update using values view when where while with",
		Keywords2: "bigint binary bit blob boolean char date datetime decimal double float " +
			"int integer interval numeric real smallint text time timestamp tinyint varbinary " +
			"varchar",
		Functions: "abs( avg( ceil( char_(length( coalesce( concat( count( current_(date( " +
			"floor( greatest( least( length( lower( ltrim( max( min( mod( nullif( nvl( " +
			"power( replace( round( rtrim( sign( sqrt( substr(ing( sum( translate( trim( " +
			"trunc( upper(",
	}
}
