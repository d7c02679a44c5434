package shell

import (
	"embed"
	"errors"
	"strings"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage(topic string) (string, error) {
	if topic == "" {
		topic = "usage"
	}
	dat, err := helptext.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return "", errors.New("there is no help text for the topic " + topic)
	}
	return strings.TrimRight(string(dat), "\n"), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	topic := ""
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	}
	text, err := usage(topic)
	if err != nil {
		return nil, err
	}
	return msg(text), nil
}
