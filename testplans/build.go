// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

import (
	"strconv"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// GetLatestBuild retrieves the most recent build of a build
// definition.
func (c *Client) GetLatestBuild(definitionID int) (restdata.Build, error) {
	var build restdata.Build
	req := c.Rest.NewRequest(latestBuildTemplate)
	req.SetPlaceholder("definitionId", strconv.Itoa(definitionID))
	err := req.Get(&build)
	return build, err
}

// GetBuild retrieves a build by id.
func (c *Client) GetBuild(buildID int) (restdata.Build, error) {
	var build restdata.Build
	req := c.Rest.NewRequest(buildTemplate)
	req.SetPlaceholder("buildId", strconv.Itoa(buildID))
	err := req.Get(&build)
	return build, err
}
