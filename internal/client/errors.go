package client

import "errors"

var errNoServicesProvided = errors.New("client app requires services, ui and config")
