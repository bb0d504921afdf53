package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/hoodca/statedb/bootstrap"
	"github.com/hoodca/statedb/configuration"
)

var banner = `
     _        _           _ _
 ___| |_ __ _| |_ ___  __| | |__
/ __| __/ _` + "`" + ` | __/ _ \/ _` + "`" + ` | '_ \
\__ \ || (_| | ||  __/ (_| | |_) |
|___/\__\__,_|\__\___|\__,_|_.__/
                   version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner && !c.Interactive {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)

	start()
}
