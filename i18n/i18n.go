// Package i18n holds every user-visible string of the game, keyed by a
// stable identifier and translated with golang.org/x/text.
package i18n

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	Greeting       = "game.greeting"
	InputFormat    = "game.input_format"
	UserBoard      = "game.user_board"
	ComputerBoard  = "game.computer_board"
	UserTurn       = "game.user_turn"
	ComputerTurn   = "game.computer_turn"
	UserWon        = "game.user_won"
	ComputerWon    = "game.computer_won"
	ComputerTarget = "move.computer_target"
	Prompt         = "move.prompt"
	NeedTwoCoords  = "move.need_two_coords"
	NeedNumbers    = "move.need_numbers"
	ShipSunk       = "shot.sunk"
	ShipHit        = "shot.hit"
	Miss           = "shot.miss"
	OutOfBounds    = "shot.out_of_bounds"
	AlreadyShot    = "shot.already_targeted"
	PressToExit    = "tui.exit"
)

// BaseLocale is used whenever a requested language has no catalog.
var BaseLocale = language.English

var translations = map[language.Tag]map[string]string{
	language.English: {
		Greeting:       "Welcome to Sea Battle",
		InputFormat:    "Input format: x y, where x is the column number and y is the row number.",
		UserBoard:      "Your board:",
		ComputerBoard:  "Computer's board:",
		UserTurn:       "Your turn!",
		ComputerTurn:   "Computer's turn!",
		UserWon:        "You won!",
		ComputerWon:    "The computer won!",
		ComputerTarget: "Computer's move: %d %d",
		Prompt:         "Your move: ",
		NeedTwoCoords:  "Enter 2 coordinates!",
		NeedNumbers:    "Enter numbers!",
		ShipSunk:       "Ship sunk!",
		ShipHit:        "Ship hit!",
		Miss:           "Miss!",
		OutOfBounds:    "Shot out of bounds!",
		AlreadyShot:    "You have already shot at this point!",
		PressToExit:    "Press Ctrl+C to exit",
	},
	language.Russian: {
		Greeting:       "Приветствуем вас в игре морской бой",
		InputFormat:    "Формат ввода: x y, где x - номер столбца, y - номер строки.",
		UserBoard:      "Доска пользователя:",
		ComputerBoard:  "Доска компьютера:",
		UserTurn:       "Ходит пользователь!",
		ComputerTurn:   "Ходит компьютер!",
		UserWon:        "Пользователь выиграл!",
		ComputerWon:    "Компьютер выиграл!",
		ComputerTarget: "Ход компьютера: %d %d",
		Prompt:         "Ваш ход: ",
		NeedTwoCoords:  "Введите 2 координаты!",
		NeedNumbers:    "Введите числа!",
		ShipSunk:       "Корабль уничтожен!",
		ShipHit:        "Корабль ранен!",
		Miss:           "Мимо!",
		OutOfBounds:    "Выстрел за доску!",
		AlreadyShot:    "Вы уже стреляли в эту точку!",
		PressToExit:    "Нажмите Ctrl+C для выхода",
	},
}

var (
	builder = mustBuild()
	matcher = language.NewMatcher(Languages())
)

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(BaseLocale))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Languages lists the supported locales, base locale first.
func Languages() []language.Tag {
	tags := []language.Tag{BaseLocale}
	others := make([]language.Tag, 0, len(translations))
	for tag := range translations {
		if tag != BaseLocale {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	return append(tags, others...)
}

// NewPrinter returns a printer for the closest supported match of lang.
func NewPrinter(lang string) (*message.Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	_, idx, _ := matcher.Match(tag)
	return message.NewPrinter(Languages()[idx], message.Catalog(builder)), nil
}
