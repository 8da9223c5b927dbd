// Package coerce converts between the persisted wire representation of a
// step record and the typed editable value bag. Dates cross the persistence
// boundary as dd/MM/yyyy strings and exist in memory only as time.Time;
// legacy nullable booleans are re-encoded as "Sim"/"Não" answers. This is
// the single place either conversion happens.
package coerce

import (
	"fmt"
	"time"

	"vistoforms/internal/form/models"
)

// MsgInvalidDate is the field-scoped message for a date that does not parse.
const MsgInvalidDate = "Data inválida, use o formato dd/MM/aaaa"

// Decode coerces a raw decoded-JSON map into typed Values following the
// schema. Unknown keys are dropped. Malformed values are reported as issues
// and the field is left untouched, so draft flows can proceed while submit
// flows block.
func Decode(schema models.Schema, raw map[string]any) (models.Values, []models.Issue) {
	values := make(models.Values, len(schema.Fields))
	var issues []models.Issue
	for _, field := range schema.Fields {
		rawValue, present := raw[field.Name]
		if !present {
			continue
		}
		decoded, issue := decodeField(field, field.Name, rawValue)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		values[field.Name] = decoded
	}
	return values, issues
}

func decodeField(field models.FieldSpec, path string, rawValue any) (any, *models.Issue) {
	switch field.Kind {
	case models.KindDate:
		return decodeDate(path, rawValue)
	case models.KindSimNao:
		return decodeAnswer(path, rawValue)
	case models.KindList:
		return decodeList(field, path, rawValue)
	default:
		if rawValue == nil {
			return "", nil
		}
		s, ok := rawValue.(string)
		if !ok {
			return nil, &models.Issue{Path: path, Message: msgInvalidValue}
		}
		return s, nil
	}
}

const msgInvalidValue = "Valor inválido"

func decodeDate(path string, rawValue any) (any, *models.Issue) {
	switch v := rawValue.(type) {
	case nil:
		return (*time.Time)(nil), nil
	case string:
		if v == "" {
			return (*time.Time)(nil), nil
		}
		t, err := time.Parse(models.DateLayout, v)
		if err != nil {
			return nil, &models.Issue{Path: path, Message: MsgInvalidDate}
		}
		return &t, nil
	default:
		return nil, &models.Issue{Path: path, Message: MsgInvalidDate}
	}
}

func decodeAnswer(path string, rawValue any) (any, *models.Issue) {
	switch v := rawValue.(type) {
	case nil:
		return models.Unanswered, nil
	case bool:
		return models.EncodeBool(&v), nil
	case string:
		answer := models.SimNao(v)
		if v != "" && !answer.Answered() {
			return nil, &models.Issue{Path: path, Message: validAnswerMsg}
		}
		return answer, nil
	default:
		return nil, &models.Issue{Path: path, Message: validAnswerMsg}
	}
}

const validAnswerMsg = `Resposta inválida, use "Sim" ou "Não"`

func decodeList(field models.FieldSpec, path string, rawValue any) (any, *models.Issue) {
	if rawValue == nil {
		return []models.Values(nil), nil
	}
	rawList, ok := rawValue.([]any)
	if !ok {
		return nil, &models.Issue{Path: path, Message: "Lista inválida"}
	}
	list := make([]models.Values, 0, len(rawList))
	for i, rawEntry := range rawList {
		entryMap, ok := rawEntry.(map[string]any)
		if !ok {
			return nil, &models.Issue{Path: fmt.Sprintf("%s.%d", path, i), Message: "Lista inválida"}
		}
		entry := make(models.Values, len(field.Entry))
		for _, sub := range field.Entry {
			subPath := fmt.Sprintf("%s.%d.%s", path, i, sub.Name)
			rawSub, present := entryMap[sub.Name]
			if !present {
				continue
			}
			decoded, issue := decodeField(sub, subPath, rawSub)
			if issue != nil {
				return nil, issue
			}
			entry[sub.Name] = decoded
		}
		list = append(list, entry)
	}
	return list, nil
}

// Encode serializes typed Values back into the wire representation: dates
// become dd/MM/yyyy strings, answers stay "Sim"/"Não"/"" strings, lists
// recurse. The result round-trips through Decode.
func Encode(schema models.Schema, values models.Values) map[string]any {
	out := make(map[string]any, len(schema.Fields))
	for _, field := range schema.Fields {
		value, present := values[field.Name]
		if !present {
			continue
		}
		out[field.Name] = encodeField(field, value)
	}
	return out
}

func encodeField(field models.FieldSpec, value any) any {
	switch field.Kind {
	case models.KindDate:
		t, _ := value.(*time.Time)
		if t == nil {
			return nil
		}
		return t.Format(models.DateLayout)
	case models.KindSimNao:
		switch a := value.(type) {
		case models.SimNao:
			return string(a)
		case string:
			return a
		}
		return ""
	case models.KindList:
		list, _ := value.([]models.Values)
		encoded := make([]any, len(list))
		for i, entry := range list {
			entryOut := make(map[string]any, len(field.Entry))
			for _, sub := range field.Entry {
				if subValue, present := entry[sub.Name]; present {
					entryOut[sub.Name] = encodeField(sub, subValue)
				}
			}
			encoded[i] = entryOut
		}
		return encoded
	default:
		s, _ := value.(string)
		return s
	}
}
