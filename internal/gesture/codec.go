package gestures

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

const (
	csvComma      = ';'
	csvNameColumn = "gesture_name"
	csvDataColumn = "gesture_data"
)

// FormatPoints writes points as [(x1,y1),(x2,y2),...]. Numbers use the
// shortest representation that parses back to the same float64.
func FormatPoints(points []models.Point) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParsePoints reads a point list written by FormatPoints. Pairs may also be
// bracketed, as in [[x1, y1], [x2, y2]], and whitespace is ignored.
func ParsePoints(s string) ([]models.Point, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("point list must be enclosed in []: %q", truncate(s))
	}
	body := s[1 : len(s)-1]

	var points []models.Point
	for len(body) > 0 {
		var closing byte
		switch body[0] {
		case '(':
			closing = ')'
		case '[':
			closing = ']'
		default:
			return nil, fmt.Errorf("point %d: expected ( or [, got %q", len(points), body[0])
		}
		end := strings.IndexByte(body, closing)
		if end < 0 {
			return nil, fmt.Errorf("point %d: missing %q", len(points), closing)
		}
		p, err := parsePair(body[1:end])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", len(points), err)
		}
		points = append(points, p)

		body = body[end+1:]
		if len(body) > 0 {
			if body[0] != ',' {
				return nil, fmt.Errorf("point %d: expected , got %q", len(points), body[0])
			}
			body = body[1:]
			if len(body) == 0 {
				return nil, fmt.Errorf("trailing , after point %d", len(points)-1)
			}
		}
	}
	return points, nil
}

func parsePair(s string) (models.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return models.Point{}, fmt.Errorf("expected x,y: %q", s)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return models.Point{}, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return models.Point{}, err
	}
	return models.Point{X: x, Y: y}, nil
}

func truncate(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}

// EncodeCSV writes one row per template under a gesture_name;gesture_data
// header.
func EncodeCSV(w io.Writer, gestures []models.Gesture) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvComma
	if err := cw.Write([]string{csvNameColumn, csvDataColumn}); err != nil {
		return err
	}
	for _, g := range gestures {
		for _, t := range g.Templates {
			if err := cw.Write([]string{g.Name, FormatPoints(t)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads rows written by EncodeCSV. Rows sharing a name become
// templates of one gesture, ordered by first appearance.
func DecodeCSV(r io.Reader) ([]models.Gesture, error) {
	cr := csv.NewReader(r)
	cr.Comma = csvComma
	cr.FieldsPerRecord = 2

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	nameCol, dataCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case csvNameColumn:
			nameCol = i
		case csvDataColumn:
			dataCol = i
		}
	}
	if nameCol < 0 || dataCol < 0 {
		return nil, fmt.Errorf("header must name %s and %s, got %v", csvNameColumn, csvDataColumn, header)
	}

	var gestures []models.Gesture
	index := map[string]int{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(dataCol)
		name := record[nameCol]
		points, err := ParsePoints(record[dataCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		i, ok := index[name]
		if !ok {
			i = len(gestures)
			index[name] = i
			gestures = append(gestures, models.Gesture{Name: name})
		}
		gestures[i].Templates = append(gestures[i].Templates, points)
	}
	return gestures, nil
}
