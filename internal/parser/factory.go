package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"golang.org/x/net/html/charset"
)

var registeredParsers []IParser

// RegisterParser adds a parser to the list of available parsers.
// This should be called by each parser implementation in its init() function.
func RegisterParser(p IParser) {
	registeredParsers = append(registeredParsers, p)
}

// FindParserForContent picks the parser for a report by its root element.
func FindParserForContent(data []byte) (IParser, error) {
	root, err := RootElement(data)
	if err != nil {
		return nil, err
	}
	for _, p := range registeredParsers {
		if p.SupportsRootElement(root) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no suitable parser found for root element <%s>", root)
}

// ParseFile reads and parses the report at path. A missing file yields a
// model.KindNotFound error; an unreadable document a model.KindMalformedInput one.
func ParseFile(path string, config ParserConfig) (*ParserResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.NotFound(path, err)
		}
		return nil, &model.Error{Kind: model.KindOther, Resource: path, Err: err}
	}
	return ParseBytes(data, path, config)
}

// ParseReader consumes r fully and parses it.
func ParseReader(r io.Reader, resource string, config ParserConfig) (*ParserResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &model.Error{Kind: model.KindOther, Resource: resource, Err: err}
	}
	return ParseBytes(data, resource, config)
}

// ParseBytes selects the parser for data and runs it.
func ParseBytes(data []byte, resource string, config ParserConfig) (*ParserResult, error) {
	if config == nil {
		config = NoFilters
	}
	p, err := FindParserForContent(data)
	if err != nil {
		return nil, model.Malformed(resource, err)
	}
	return p.Parse(data, resource, config)
}

// RootElement returns the local name of the first element in an XML document.
func RootElement(data []byte) (string, error) {
	decoder := newDecoder(data)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return "", errors.New("document has no root element")
		}
		if err != nil {
			return "", err
		}
		if se, ok := token.(xml.StartElement); ok {
			return se.Name.Local, nil
		}
	}
}

// DecodeXML unmarshals data into v, honouring the encoding declared in the
// XML prolog (JaCoCo writes UTF-8, other generators ISO-8859-1).
func DecodeXML(data []byte, v any) error {
	return newDecoder(data).Decode(v)
}

func newDecoder(data []byte) *xml.Decoder {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}
