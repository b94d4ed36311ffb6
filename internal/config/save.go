// Package config provides configuration types, defaults, and persistence for quill.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SaveLanguages updates the languages configuration in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveLanguages(configPath string, langs []LanguageConfig) error {
	// Read existing file content
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	// Build the new languages node
	langsNode, err := buildLanguagesNode(langs)
	if err != nil {
		return fmt.Errorf("building languages node: %w", err)
	}

	// Update or create the languages section
	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "languages"},
						langsNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			// Find and replace languages key, or append it
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == "languages" {
					root.Content[i+1] = langsNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "languages"},
					langsNode,
				)
			}
		}
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	// Write atomically (write to temp, then rename)
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".quill.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// buildLanguagesNode creates a yaml.Node representing the languages array.
func buildLanguagesNode(langs []LanguageConfig) (*yaml.Node, error) {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: make([]*yaml.Node, 0, len(langs)),
	}

	for _, lang := range langs {
		langNode := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0),
		}

		// Always include name
		langNode.Content = append(langNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "name"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: lang.Name},
		)

		if lang.Lexer != "" {
			langNode.Content = append(langNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "lexer"},
				&yaml.Node{Kind: yaml.ScalarNode, Value: lang.Lexer},
			)
		}

		if len(lang.Extensions) > 0 {
			extsNode := &yaml.Node{
				Kind:    yaml.SequenceNode,
				Style:   yaml.FlowStyle,
				Content: make([]*yaml.Node, 0, len(lang.Extensions)),
			}
			for _, ext := range lang.Extensions {
				extsNode.Content = append(extsNode.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: ext})
			}
			langNode.Content = append(langNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "extensions"},
				extsNode,
			)
		}

		if len(lang.Properties) > 0 {
			langNode.Content = append(langNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "properties"},
				buildPropertiesNode(lang.Properties),
			)
		}

		if lang.Wordlists != "" {
			langNode.Content = append(langNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "wordlists"},
				&yaml.Node{Kind: yaml.ScalarNode, Value: lang.Wordlists},
			)
		}

		node.Content = append(node.Content, langNode)
	}

	return node, nil
}

// buildPropertiesNode creates a yaml.Node representing a property map.
// Keys are sorted so repeated saves produce stable output.
func buildPropertiesNode(props map[string]int) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, len(props)*2),
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.Itoa(props[k])},
		)
	}

	return node
}

// SetLanguageProperty updates a single property within a language and saves.
func SetLanguageProperty(configPath string, langIndex int, name string, value int, allLangs []LanguageConfig) error {
	if langIndex < 0 || langIndex >= len(allLangs) {
		return fmt.Errorf("language index %d out of range (have %d languages)", langIndex, len(allLangs))
	}

	// Copy languages and the target property map before mutating
	updated := make([]LanguageConfig, len(allLangs))
	copy(updated, allLangs)

	props := make(map[string]int, len(updated[langIndex].Properties)+1)
	for k, v := range updated[langIndex].Properties {
		props[k] = v
	}
	props[name] = value
	updated[langIndex].Properties = props

	return SaveLanguages(configPath, updated)
}

// RemoveLanguageProperty deletes a property override from a language and saves.
// Removing an absent property is a no-op save.
func RemoveLanguageProperty(configPath string, langIndex int, name string, allLangs []LanguageConfig) error {
	if langIndex < 0 || langIndex >= len(allLangs) {
		return fmt.Errorf("language index %d out of range (have %d languages)", langIndex, len(allLangs))
	}

	updated := make([]LanguageConfig, len(allLangs))
	copy(updated, allLangs)

	props := make(map[string]int, len(updated[langIndex].Properties))
	for k, v := range updated[langIndex].Properties {
		if k != name {
			props[k] = v
		}
	}
	updated[langIndex].Properties = props

	return SaveLanguages(configPath, updated)
}

// AddLanguage appends a new language to the config and saves it.
func AddLanguage(configPath string, newLang LanguageConfig, existingLangs []LanguageConfig) error {
	langs := append(existingLangs, newLang)
	return SaveLanguages(configPath, langs)
}

// DeleteLanguage removes a language at the given index and saves.
// Returns error if langIndex is out of range or if it's the last language.
func DeleteLanguage(configPath string, langIndex int, allLangs []LanguageConfig) error {
	if len(allLangs) <= 1 {
		return fmt.Errorf("cannot delete the only language")
	}
	if langIndex < 0 || langIndex >= len(allLangs) {
		return fmt.Errorf("language index %d out of range (have %d languages)", langIndex, len(allLangs))
	}

	// Create new slice without the deleted language
	updated := make([]LanguageConfig, 0, len(allLangs)-1)
	for i, lang := range allLangs {
		if i != langIndex {
			updated = append(updated, lang)
		}
	}

	return SaveLanguages(configPath, updated)
}

// RenameLanguage renames the language at the given index and saves.
// Returns error if langIndex is out of range or if saving fails.
func RenameLanguage(configPath string, langIndex int, newName string, allLangs []LanguageConfig) error {
	if langIndex < 0 || langIndex >= len(allLangs) {
		return fmt.Errorf("language index %d out of range (have %d languages)", langIndex, len(allLangs))
	}

	// Update the language name in the slice
	allLangs[langIndex].Name = newName

	return SaveLanguages(configPath, allLangs)
}

// SetExtensions replaces the extension list for a language and saves.
func SetExtensions(configPath string, langIndex int, extensions []string, allLangs []LanguageConfig) error {
	if langIndex < 0 || langIndex >= len(allLangs) {
		return fmt.Errorf("language index %d out of range (have %d languages)", langIndex, len(allLangs))
	}

	updated := make([]LanguageConfig, len(allLangs))
	copy(updated, allLangs)
	updated[langIndex].Extensions = extensions

	return SaveLanguages(configPath, updated)
}
