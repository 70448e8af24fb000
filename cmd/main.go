package cmd

import "github.com/google/subcommands"

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&profitCmd{},
	&returnCmd{},
	&reviewCmd{},
	&priceCmd{},
	&importCmd{},
	&fetchCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&profitCmd{}, "performance")
	c.Register(&returnCmd{}, "performance")
	c.Register(&reviewCmd{}, "performance")

	c.Register(&priceCmd{}, "market")
	c.Register(&importCmd{}, "market")
	c.Register(&fetchCmd{}, "market")
	c.Register(&fmtCmd{}, "market")

	c.Register(&topicCmd{}, "")
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
}
