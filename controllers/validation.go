package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/services"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// bindStrict decodes the JSON body into raw fields and rejects any key not in
// the route's whitelist. Payload shape is enforced here, before the services
// see anything; the services only re-check business rules.
func bindStrict(c *gin.Context, allowed ...string) (map[string]json.RawMessage, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return nil, false
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return nil, false
	}

	var extras []string
	for key := range fields {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			extras = append(extras, key)
		}
	}
	if len(extras) > 0 {
		sort.Strings(extras)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Campos extras não permitidos: %s", strings.Join(extras, ", ")),
		})
		return nil, false
	}
	return fields, true
}

func asString(raw json.RawMessage) (string, bool) {
	var s string
	err := json.Unmarshal(raw, &s)
	return s, err == nil
}

func asNumber(raw json.RawMessage) (float64, bool) {
	var n float64
	err := json.Unmarshal(raw, &n)
	return n, err == nil
}

func parseRegisterInput(fields map[string]json.RawMessage) (services.RegisterInput, []fieldError) {
	var in services.RegisterInput
	var errs []fieldError

	if raw, ok := fields["name"]; !ok {
		errs = append(errs, fieldError{"name", "Nome é obrigatório e deve ser uma string"})
	} else if name, ok := asString(raw); !ok || name == "" {
		errs = append(errs, fieldError{"name", "Nome é obrigatório e deve ser uma string"})
	} else {
		in.Name = name
	}

	if raw, ok := fields["email"]; !ok {
		errs = append(errs, fieldError{"email", "Email inválido"})
	} else if email, ok := asString(raw); !ok || !emailPattern.MatchString(email) {
		errs = append(errs, fieldError{"email", "Email inválido"})
	} else {
		in.Email = email
	}

	if raw, ok := fields["password"]; !ok {
		errs = append(errs, fieldError{"password", "Senha deve ter pelo menos 6 caracteres"})
	} else if password, ok := asString(raw); !ok || len(password) < 6 {
		errs = append(errs, fieldError{"password", "Senha deve ter pelo menos 6 caracteres"})
	} else {
		in.Password = password
	}

	return in, errs
}

func parseLoginInput(fields map[string]json.RawMessage) (string, string, []fieldError) {
	var email, password string
	var errs []fieldError

	if raw, ok := fields["email"]; !ok {
		errs = append(errs, fieldError{"email", "Email inválido"})
	} else if v, ok := asString(raw); !ok || !emailPattern.MatchString(v) {
		errs = append(errs, fieldError{"email", "Email inválido"})
	} else {
		email = v
	}

	if raw, ok := fields["password"]; !ok {
		errs = append(errs, fieldError{"password", "Senha é obrigatória"})
	} else if v, ok := asString(raw); !ok || v == "" {
		errs = append(errs, fieldError{"password", "Senha é obrigatória"})
	} else {
		password = v
	}

	return email, password, errs
}

// parseFoodInput validates the food payload shared by POST and PUT: name and
// calories are required, the remaining fields overwrite only when present.
func parseFoodInput(fields map[string]json.RawMessage) (models.FoodInput, []fieldError) {
	var in models.FoodInput
	var errs []fieldError

	if raw, ok := fields["name"]; !ok {
		errs = append(errs, fieldError{"name", "Nome do alimento é obrigatório"})
	} else if name, ok := asString(raw); !ok || name == "" {
		errs = append(errs, fieldError{"name", "Nome do alimento é obrigatório"})
	} else {
		in.Name = name
	}

	if raw, ok := fields["calories"]; !ok {
		errs = append(errs, fieldError{"calories", "Calories deve ser numérico"})
	} else if calories, ok := asNumber(raw); !ok {
		errs = append(errs, fieldError{"calories", "Calories deve ser numérico"})
	} else {
		in.Calories = calories
	}

	if raw, ok := fields["category"]; ok {
		if category, ok := asString(raw); ok {
			in.Category = &category
		} else {
			errs = append(errs, fieldError{"category", "Category deve ser uma string"})
		}
	}

	for field, dst := range map[string]**float64{
		"protein": &in.Protein,
		"carbs":   &in.Carbs,
		"fat":     &in.Fat,
	} {
		if raw, ok := fields[field]; ok {
			if n, ok := asNumber(raw); ok {
				v := n
				*dst = &v
			} else {
				errs = append(errs, fieldError{field, fmt.Sprintf("%s deve ser numérico", field)})
			}
		}
	}

	return in, errs
}

// parseMealFoods extracts the foods id list. On create the key is required;
// on update an omitted key skips the food-list patch entirely, while a key
// present with a malformed or empty value is rejected.
func parseMealFoods(fields map[string]json.RawMessage, required bool) (*[]string, []fieldError) {
	raw, present := fields["foods"]
	if !present {
		if required {
			return nil, []fieldError{{"foods", "Foods deve ser um array"}}
		}
		return nil, nil
	}

	var foods []string
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, []fieldError{{"foods", "Foods deve ser um array"}}
	}
	if len(foods) == 0 {
		return nil, []fieldError{{"foods", "Foods deve ser um array não vazio"}}
	}
	return &foods, nil
}
