package xmlutils

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/recipe-book/internal/logging"

	"gopkg.in/xmlpath.v2"
)

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string, logger logging.Logger) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil && logger != nil {
			logger.WithError(err).Warn("Failed to close file", logging.F(logging.FieldFile, xmlFilePath))
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML file: %w", err)
	}

	return root, nil
}

// Nodes returns every node matched by xpath, evaluated from node.
func Nodes(node *xmlpath.Node, xpath string) ([]*xmlpath.Node, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var nodes []*xmlpath.Node
	iter := path.Iter(node)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes, nil
}

// ExtractFromXML extracts the cleaned text of every node matched by xpath.
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	nodes, err := Nodes(root, xpath)
	if err != nil {
		return nil, err
	}

	values := make([]string, len(nodes))
	for i, n := range nodes {
		values[i] = CleanText(n.String())
	}
	return values, nil
}

// FirstFromXML returns the cleaned text of the first node matched by xpath, or ""
// when nothing matches.
func FirstFromXML(node *xmlpath.Node, xpath string) (string, error) {
	values, err := ExtractFromXML(node, xpath)
	if err != nil {
		return "", err
	}
	return GetOrEmpty(values, 0), nil
}

// GetOrEmpty returns the value at the specified index in a slice, or an empty string if the index is out of bounds
func GetOrEmpty(slice []string, index int) string {
	if index >= 0 && index < len(slice) {
		return slice[index]
	}
	return ""
}

// CleanText collapses runs of whitespace, including newlines and tabs, into single
// spaces and trims the result.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
