// Copyright (c) 2019 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ixvmapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

const (
	apiKeyHeader = "x-api-key"

	loginPath    = "platform/api/v1/auth/session"
	platformPath = "platform"
	chassisPath  = "chassis/api/v2/ixos/chassis"
	cardsPath    = "chassis/api/v2/ixos/cards"
	portsPath    = "chassis/api/v2/ixos/ports"

	// DefaultScheme is used when ClientConfig.Scheme is empty.
	DefaultScheme = "https"
	// DefaultPort is used when ClientConfig.Port is zero.
	DefaultPort = 443
	// DefaultTimeout bounds a single HTTP call.
	DefaultTimeout = 30 * time.Second
)

// ClientConfig holds everything needed to reach the controller.
type ClientConfig struct {
	Address   string
	User      string
	Password  string
	Scheme    string
	Port      int
	VerifySSL bool
	Timeout   time.Duration
}

// Client talks to the controller REST API. A Client holds no session state,
// authenticated calls take the *Session returned by Login.
type Client struct {
	cfg  ClientConfig
	base string
	http *http.Client
	log  logging.Logger
}

// NewClient creates a client for the given controller.
func NewClient(cfg ClientConfig, log logging.Logger) *Client {
	if cfg.Scheme == "" {
		cfg.Scheme = DefaultScheme
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifySSL},
	}
	return &Client{
		cfg:  cfg,
		base: fmt.Sprintf("%s://%s:%d", cfg.Scheme, cfg.Address, cfg.Port),
		http: &http.Client{Transport: transport, Timeout: cfg.Timeout},
		log:  log,
	}
}

// BaseURL returns the controller URL all paths are relative to.
func (c *Client) BaseURL() string {
	return c.base
}

// Login opens an API session with the configured credentials.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	body := loginRequest{
		Username:   c.cfg.User,
		Password:   c.cfg.Password,
		RememberMe: true,
	}
	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, loginPath, nil, body, &resp); err != nil {
		return nil, errors.Wrap(err, "login to IxVM controller")
	}
	if resp.APIKey == "" {
		return nil, api.NewTransportError(http.MethodPost, c.url(loginPath), http.StatusOK,
			errors.New("response does not contain an API key"))
	}
	c.log.Debugf("Logged in to IxVM controller %s as %s", c.base, c.cfg.User)
	return &Session{APIKey: resp.APIKey}, nil
}

// GetChassis returns the chassis listing.
func (c *Client) GetChassis(ctx context.Context, sess *Session) ([]ChassisRecord, error) {
	var chassis []ChassisRecord
	if err := c.doJSON(ctx, http.MethodGet, chassisPath, sess, nil, &chassis); err != nil {
		return nil, err
	}
	return chassis, nil
}

// GetCards returns the cards listing.
func (c *Client) GetCards(ctx context.Context, sess *Session) ([]CardRecord, error) {
	var cards []CardRecord
	if err := c.doJSON(ctx, http.MethodGet, cardsPath, sess, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetPorts returns the ports listing.
func (c *Client) GetPorts(ctx context.Context, sess *Session) ([]PortRecord, error) {
	var ports []PortRecord
	if err := c.doJSON(ctx, http.MethodGet, portsPath, sess, nil, &ports); err != nil {
		return nil, err
	}
	return ports, nil
}

// IsDeployed probes the platform endpoint. A connection failure means the
// service is not up yet and is reported as (false, nil).
func (c *Client) IsDeployed(ctx context.Context) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, platformPath, nil, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugf("IxVM controller %s is not reachable yet: %v", c.base, err)
		return false, nil
	}
	drain(resp.Body)
	return resp.StatusCode == http.StatusOK, nil
}

func (c *Client) url(path string) string {
	return c.base + "/" + path
}

func (c *Client) newRequest(ctx context.Context, method, path string, sess *Session, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s %s request", method, path)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, c.url(path), reader)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s %s request", method, path)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for name, value := range sess.Header() {
		req.Header.Set(name, value)
	}
	return req, nil
}

// doJSON sends the request and decodes a 2xx JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, sess *Session, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, sess, body)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return api.NewTransportError(method, c.url(path), 0, err)
	}
	defer drain(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return api.NewTransportError(method, c.url(path), resp.StatusCode, nil)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return api.NewTransportError(method, c.url(path), resp.StatusCode,
			errors.Wrap(err, "decoding response"))
	}
	return nil
}

func drain(body io.ReadCloser) {
	io.Copy(ioutil.Discard, body)
	body.Close()
}
