package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionGenerate = "gen"
	actionCard     = "card"
	actionClear    = "clear"
)

// Generate sub-actions.
const (
	generateMenu     = "menu"
	generateCategory = "cat"
	generateAmount   = "amt"
)

// Card sub-actions.
const (
	cardShow = "show"
	cardHide = "hide"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildGenerateMenuCallback builds callback data for opening the category picker.
func buildGenerateMenuCallback() string {
	return callbackData{
		Action: actionGenerate,
		Params: []string{generateMenu},
	}.encode()
}

// buildGenerateCategoryCallback builds callback data for choosing a category.
func buildGenerateCategoryCallback(categoryID int) string {
	return callbackData{
		Action: actionGenerate,
		Params: []string{generateCategory, strconv.Itoa(categoryID)},
	}.encode()
}

// buildGenerateAmountCallback builds callback data for choosing the amount and generating.
func buildGenerateAmountCallback(categoryID, amount int) string {
	return callbackData{
		Action: actionGenerate,
		Params: []string{generateAmount, strconv.Itoa(categoryID), strconv.Itoa(amount)},
	}.encode()
}

// buildCardCallback builds callback data for showing a card, revealed or not.
func buildCardCallback(cardID string, revealed bool) string {
	mode := cardHide
	if revealed {
		mode = cardShow
	}
	return callbackData{
		Action: actionCard,
		Params: []string{mode, cardID},
	}.encode()
}

func buildClearCallback() string {
	return actionClear
}
