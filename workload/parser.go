// Package workload parses the line-oriented workload file format and replays
// it as HTTP traffic against the order service front.
//
// Format:
//
//	USER create <id> <username> <email> <password>
//	USER get <id>
//	USER update <id> username:<username> email:<email> password:<password>
//	USER delete <id> <username> <email> <password>
//	PRODUCT create <id> <name> [<description>] <price> <quantity>
//	PRODUCT info <id>
//	PRODUCT update <id> name:<name> description:<d> price:<p> quantity:<q>
//	PRODUCT delete <id> <name> <price> <quantity>
//	ORDER place <product_id> <user_id> <quantity>
//	ORDER get <user_id>
//
// Anything after '#' on a line is a comment. Blank lines are skipped.
package workload

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Step is one replayable HTTP request derived from a workload line. Body is nil
// for GET steps.
type Step struct {
	Method string
	Path   string
	Body   map[string]any
}

// Parse converts a single workload line into a Step. The second return is false
// for blank lines, comment-only lines and unknown line kinds, which are skipped
// without error.
func Parse(line string) (Step, bool, error) {
	if hash := strings.IndexByte(line, '#'); hash >= 0 {
		line = line[:hash]
	}
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return Step{}, false, nil
	}

	kind := strings.ToUpper(tokens[0])
	command := strings.ToLower(tokens[1])

	switch kind {
	case "USER":
		return parseUser(command, tokens)
	case "PRODUCT":
		return parseProduct(command, tokens)
	case "ORDER":
		return parseOrder(command, tokens)
	default:
		return Step{}, false, nil
	}
}

func parseUser(command string, tokens []string) (Step, bool, error) {
	if command == "get" || command == "info" {
		id, err := parseInt(tokens, 2, "id")
		if err != nil {
			return Step{}, false, err
		}
		return Step{Method: http.MethodGet, Path: "/user/" + strconv.Itoa(id)}, true, nil
	}

	id, err := parseInt(tokens, 2, "id")
	if err != nil {
		return Step{}, false, err
	}
	body := map[string]any{"command": command, "id": id}

	switch command {
	case "create", "delete":
		if len(tokens) < 6 {
			return Step{}, false, fmt.Errorf("USER %s expects 6 tokens, got %d", command, len(tokens))
		}
		body["username"] = tokens[2+1]
		body["email"] = tokens[2+2]
		body["password"] = tokens[2+3]
	case "update":
		for key, value := range keyValueTokens(tokens[3:]) {
			switch key {
			case "username", "email", "password":
				body[key] = value
			}
		}
	}
	// Unknown user commands are sent as-is; the service rejects them.
	return Step{Method: http.MethodPost, Path: "/user", Body: body}, true, nil
}

func parseProduct(command string, tokens []string) (Step, bool, error) {
	if command == "get" || command == "info" {
		id, err := parseInt(tokens, 2, "id")
		if err != nil {
			return Step{}, false, err
		}
		return Step{Method: http.MethodGet, Path: "/product/" + strconv.Itoa(id)}, true, nil
	}

	id, err := parseInt(tokens, 2, "id")
	if err != nil {
		return Step{}, false, err
	}
	body := map[string]any{"command": command, "id": id}

	switch command {
	case "create":
		// Sample workloads sometimes omit the description token.
		switch len(tokens) {
		case 7:
			price, err := parseFloat(tokens[5], "price")
			if err != nil {
				return Step{}, false, err
			}
			quantity, err := parseIntToken(tokens[6], "quantity")
			if err != nil {
				return Step{}, false, err
			}
			putProductName(body, tokens[3])
			body["description"] = tokens[4]
			body["price"] = price
			body["quantity"] = quantity
		case 6:
			price, err := parseFloat(tokens[4], "price")
			if err != nil {
				return Step{}, false, err
			}
			quantity, err := parseIntToken(tokens[5], "quantity")
			if err != nil {
				return Step{}, false, err
			}
			putProductName(body, tokens[3])
			body["description"] = "desc-" + tokens[3]
			body["price"] = price
			body["quantity"] = quantity
		default:
			return Step{}, false, fmt.Errorf("PRODUCT create expects 6 or 7 tokens, got %d", len(tokens))
		}
	case "update":
		for key, value := range keyValueTokens(tokens[3:]) {
			switch key {
			case "name", "productname":
				putProductName(body, value)
			case "description":
				body["description"] = value
			case "price":
				price, err := parseFloat(value, "price")
				if err != nil {
					return Step{}, false, err
				}
				body["price"] = price
			case "quantity":
				quantity, err := parseIntToken(value, "quantity")
				if err != nil {
					return Step{}, false, err
				}
				body["quantity"] = quantity
			}
		}
	case "delete":
		if len(tokens) < 6 {
			return Step{}, false, fmt.Errorf("PRODUCT delete expects 6 tokens, got %d", len(tokens))
		}
		price, err := parseFloat(tokens[4], "price")
		if err != nil {
			return Step{}, false, err
		}
		quantity, err := parseIntToken(tokens[5], "quantity")
		if err != nil {
			return Step{}, false, err
		}
		putProductName(body, tokens[3])
		body["price"] = price
		body["quantity"] = quantity
	}
	return Step{Method: http.MethodPost, Path: "/product", Body: body}, true, nil
}

func parseOrder(command string, tokens []string) (Step, bool, error) {
	switch command {
	case "place":
		if len(tokens) < 5 {
			return Step{}, false, fmt.Errorf("ORDER place expects 5 tokens, got %d", len(tokens))
		}
		productID, err := parseIntToken(tokens[2], "product_id")
		if err != nil {
			return Step{}, false, err
		}
		userID, err := parseIntToken(tokens[3], "user_id")
		if err != nil {
			return Step{}, false, err
		}
		quantity, err := parseIntToken(tokens[4], "quantity")
		if err != nil {
			return Step{}, false, err
		}
		body := map[string]any{
			"command":    "place order",
			"product_id": productID,
			"user_id":    userID,
			"quantity":   quantity,
		}
		return Step{Method: http.MethodPost, Path: "/order", Body: body}, true, nil
	case "get":
		userID, err := parseInt(tokens, 2, "user_id")
		if err != nil {
			return Step{}, false, err
		}
		return Step{Method: http.MethodGet, Path: "/user/purchased/" + strconv.Itoa(userID)}, true, nil
	default:
		// Unknown order commands are sent as-is; the service rejects them.
		return Step{Method: http.MethodPost, Path: "/order", Body: map[string]any{"command": command}}, true, nil
	}
}

// putProductName writes the product name under both accepted keys.
func putProductName(body map[string]any, name string) {
	body["productname"] = name
	body["name"] = name
}

// keyValueTokens parses tokens of the form key:value, lowercasing keys. Tokens
// without a colon (or starting with one) are skipped.
func keyValueTokens(tokens []string) map[string]string {
	kv := make(map[string]string, len(tokens))
	for _, token := range tokens {
		colon := strings.IndexByte(token, ':')
		if colon <= 0 {
			continue
		}
		kv[strings.ToLower(token[:colon])] = token[colon+1:]
	}
	return kv
}

func parseInt(tokens []string, index int, field string) (int, error) {
	if len(tokens) <= index {
		return 0, fmt.Errorf("missing token for %s", field)
	}
	return parseIntToken(tokens[index], field)
}

func parseIntToken(token, field string) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", field, token)
	}
	return value, nil
}

func parseFloat(token, field string) (float64, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %q", field, token)
	}
	return value, nil
}
