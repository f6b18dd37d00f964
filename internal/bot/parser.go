// Package bot — parser.go разбирает текст сообщения на команду и аргументы.
package bot

import "strings"

// CommandParser парсит команды с префиксами / и !.
// Понимает упоминание бота: /streak@beautive_bot.
type CommandParser struct {
	validPrefixes []string
	username      string
}

// NewCommandParser создаёт парсер команд. username — имя бота без «@».
func NewCommandParser(username string) *CommandParser {
	return &CommandParser{
		validPrefixes: []string{"/", "!"},
		username:      strings.ToLower(username),
	}
}

// ParseCommand разбирает текст на команду и аргументы.
// Команда, адресованная другому боту, командой не считается.
func (p *CommandParser) ParseCommand(text string) (string, []string, bool) {
	body, ok := p.trimPrefix(text)
	if !ok {
		return "", nil, false
	}

	parts := strings.Fields(body)
	if len(parts) == 0 {
		return "", nil, false
	}

	command := strings.ToLower(parts[0])
	if name, mention, found := strings.Cut(command, "@"); found {
		if p.username != "" && mention != p.username {
			return "", nil, false
		}
		command = name
	}
	if command == "" {
		return "", nil, false
	}

	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}

	return command, args, true
}

// Rest возвращает текст после команды как есть, с переносами строк.
func (p *CommandParser) Rest(text string) string {
	body, ok := p.trimPrefix(text)
	if !ok {
		return ""
	}
	i := strings.IndexAny(body, " \t\n")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(body[i:])
}

func (p *CommandParser) trimPrefix(text string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, prefix := range p.validPrefixes {
		if strings.HasPrefix(text, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(text, prefix)), true
		}
	}
	return "", false
}
