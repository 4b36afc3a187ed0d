package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// readZipFile returns the content of a package part, or nil if the part
// does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// walkElement consumes tokens up to the end of the current element and
// calls fn for every start element inside it. fn returns true when it
// consumed that element through its end tag.
func walkElement(decoder *xml.Decoder, fn func(se xml.StartElement) bool) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		switch t := token.(type) {
		case xml.StartElement:
			if !fn(t) {
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// resolveRelativePath turns a relationship target into a package path.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part that belongs to a part,
// e.g. xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func relsPathFor(partPath string) string {
	dir, file := "", partPath
	if i := strings.LastIndex(partPath, "/"); i >= 0 {
		dir, file = partPath[:i+1], partPath[i+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

// relationship is one entry of a .rels part.
type relationship struct {
	id     string
	target string
	typ    string
}

func parseRels(data []byte) []relationship {
	var rels []relationship
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rels = append(rels, relationship{
				id:     attr(se, "Id"),
				target: attr(se, "Target"),
				typ:    strings.ToLower(attr(se, "Type")),
			})
		}
	}

	return rels
}

// parseWorkbookSheets maps relationship ids to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attr(se, "name"), attr(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// sheetPaths maps sheet names to their worksheet parts.
func sheetPaths(r *zip.Reader) (map[string]string, error) {
	result := make(map[string]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result, err
	}

	for _, rel := range parseRels(wbRelsXML) {
		if sheetName, ok := sheetsInfo[rel.id]; ok && strings.Contains(rel.typ, "worksheet") {
			result[sheetName] = resolveRelativePath(rel.target, "xl")
		}
	}

	return result, nil
}
