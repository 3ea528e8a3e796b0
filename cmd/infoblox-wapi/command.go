package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oneops/infoblox-wapi/pkg/wapi"
)

var (
	ErrNoCommand      = errors.New("no command given")
	ErrObjectUnknown  = errors.New("object is unknown")
	ErrVerbUnknown    = errors.New("verb is unknown")
	ErrArgumentsCount = errors.New("invalid number of arguments")
)

type command struct {
	object string
	verb   string
	args   []string
}

func parseCommand(args []string) (c command, err error) {
	const minArgs = 2
	if len(args) < minArgs {
		return c, fmt.Errorf("%w: usage: infoblox-wapi <object> <verb> [args...]",
			ErrNoCommand)
	}
	return command{
		object: args[0],
		verb:   args[1],
		args:   args[2:],
	}, nil
}

// run executes the command and returns the objects to print together
// with a human readable notification for mutating verbs, empty for
// read only ones.
func (c command) run(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.object {
	case "a":
		return c.runA(ctx, client)
	case "aaaa":
		return c.runAAAA(ctx, client)
	case "cname":
		return c.runCName(ctx, client)
	case "mx":
		return c.runMX(ctx, client)
	case "ptr":
		return c.runPTR(ctx, client)
	case "txt":
		return c.runTXT(ctx, client)
	case "host":
		return c.runHost(ctx, client)
	case "zone-auth":
		return c.runZoneAuth(ctx, client)
	case "zone-delegated":
		return c.runZoneDelegated(ctx, client)
	case "ref":
		return c.runRef(ctx, client)
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrObjectUnknown, c.object)
	}
}

func (c command) checkArgs(counts ...int) (err error) {
	for _, count := range counts {
		if len(c.args) == count {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %s takes %v arguments and got %d",
		ErrArgumentsCount, c.object, c.verb, counts, len(c.args))
}

//nolint:gocyclo
func (c command) runA(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		if len(c.args) == 1 {
			results, err = client.GetARec(ctx, c.args[0])
		} else {
			results, err = client.GetARecWithIP(ctx, c.args[0], c.args[1])
		}
		return results, "", err
	case "get-by-ip":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		results, err = client.GetARecByIP(ctx, c.args[0])
		return results, "", err
	case "create":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.CreateARec(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "created A record " + c.args[0] + " -> " + c.args[1], nil
	case "modify-name":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyARecName(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "renamed A records " + c.args[0] + " to " + c.args[1], nil
	case "modify-ip":
		err = c.checkArgs(3) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyARecIP(ctx, c.args[0], c.args[1], c.args[2])
		if err != nil {
			return nil, "", err
		}
		return results, "changed A records " + c.args[0] +
			" from " + c.args[1] + " to " + c.args[2], nil
	case "delete":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		var deletedRefs []string
		if len(c.args) == 1 {
			deletedRefs, err = client.DeleteARec(ctx, c.args[0])
		} else {
			deletedRefs, err = client.DeleteARecWithIP(ctx, c.args[0], c.args[1])
		}
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" A records for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

//nolint:gocyclo
func (c command) runAAAA(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		if len(c.args) == 1 {
			results, err = client.GetAAAARec(ctx, c.args[0])
		} else {
			results, err = client.GetAAAARecWithIP(ctx, c.args[0], c.args[1])
		}
		return results, "", err
	case "get-by-ip":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		results, err = client.GetAAAARecByIP(ctx, c.args[0])
		return results, "", err
	case "create":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.CreateAAAARec(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "created AAAA record " + c.args[0] + " -> " + c.args[1], nil
	case "modify-name":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyAAAARecName(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "renamed AAAA records " + c.args[0] + " to " + c.args[1], nil
	case "modify-ip":
		err = c.checkArgs(3) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyAAAARecIP(ctx, c.args[0], c.args[1], c.args[2])
		if err != nil {
			return nil, "", err
		}
		return results, "changed AAAA records " + c.args[0] +
			" from " + c.args[1] + " to " + c.args[2], nil
	case "delete":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		var deletedRefs []string
		if len(c.args) == 1 {
			deletedRefs, err = client.DeleteAAAARec(ctx, c.args[0])
		} else {
			deletedRefs, err = client.DeleteAAAARecWithIP(ctx, c.args[0], c.args[1])
		}
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" AAAA records for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

//nolint:gocyclo
func (c command) runCName(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		if len(c.args) == 1 {
			results, err = client.GetCNameRec(ctx, c.args[0])
		} else {
			results, err = client.GetCNameRecWithCanonical(ctx, c.args[0], c.args[1])
		}
		return results, "", err
	case "get-by-canonical":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		results, err = client.GetCNameRecByCanonical(ctx, c.args[0])
		return results, "", err
	case "create":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.CreateCNameRec(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "created CNAME record " + c.args[0] + " -> " + c.args[1], nil
	case "modify-name":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyCNameRecName(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "renamed CNAME records " + c.args[0] + " to " + c.args[1], nil
	case "modify-canonical":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyCNameRecCanonical(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "changed CNAME records " + c.args[0] +
			" canonical to " + c.args[1], nil
	case "delete":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		var deletedRefs []string
		if len(c.args) == 1 {
			deletedRefs, err = client.DeleteCNameRec(ctx, c.args[0])
		} else {
			deletedRefs, err = client.DeleteCNameRecWithCanonical(ctx,
				c.args[0], c.args[1])
		}
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" CNAME records for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

func (c command) runMX(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		if len(c.args) == 1 {
			results, err = client.GetMXRec(ctx, c.args[0])
		} else {
			results, err = client.GetMXRecWithExchanger(ctx, c.args[0], c.args[1])
		}
		return results, "", err
	case "create":
		err = c.checkArgs(3) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		preference, err := strconv.ParseUint(c.args[2], 10, 16)
		if err != nil {
			return nil, "", fmt.Errorf("parsing preference: %w", err)
		}
		results, err = client.CreateMXRec(ctx, c.args[0], c.args[1],
			uint16(preference))
		if err != nil {
			return nil, "", err
		}
		return results, "created MX record " + c.args[0] + " -> " + c.args[1], nil
	case "modify-name":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyMXRecName(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "renamed MX records " + c.args[0] + " to " + c.args[1], nil
	case "delete":
		err = c.checkArgs(1, 2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		var deletedRefs []string
		if len(c.args) == 1 {
			deletedRefs, err = client.DeleteMXRec(ctx, c.args[0])
		} else {
			deletedRefs, err = client.DeleteMXRecWithExchanger(ctx,
				c.args[0], c.args[1])
		}
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" MX records for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

func (c command) runPTR(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get-by-ip":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		results, err = client.GetPTRRecByIP(ctx, c.args[0])
		return results, "", err
	case "get-by-domain":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		results, err = client.GetPTRRecByDomain(ctx, c.args[0])
		return results, "", err
	case "create":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.CreatePTRRec(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "created PTR record " + c.args[0] + " -> " + c.args[1], nil
	case "modify":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyPTRRec(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "changed PTR records of " + c.args[0] +
			" to " + c.args[1], nil
	case "delete-by-ip":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		deletedRefs, err := client.DeletePTRRecByIP(ctx, c.args[0])
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" PTR records for " + c.args[0], nil
	case "delete-by-domain":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		deletedRefs, err := client.DeletePTRRecByDomain(ctx, c.args[0])
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" PTR records for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

func (c command) runTXT(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		results, err = client.GetTXTRec(ctx, c.args[0])
		return results, "", err
	case "create":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.CreateTXTRec(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "created TXT record " + c.args[0], nil
	case "modify":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		results, err = client.ModifyTXTRec(ctx, c.args[0], c.args[1])
		if err != nil {
			return nil, "", err
		}
		return results, "changed TXT records of " + c.args[0], nil
	case "delete":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		deletedRefs, err := client.DeleteTXTRec(ctx, c.args[0])
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" TXT records for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

func (c command) runHost(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		results, err = client.GetHostRec(ctx, c.args[0])
		return results, "", err
	case "create":
		if len(c.args) < 2 { //nolint:gomnd
			return nil, "", fmt.Errorf(
				"%w: host create takes a domain name and at least one IPv4 address",
				ErrArgumentsCount)
		}
		results, err = client.CreateHostRec(ctx, c.args[0], c.args[1:])
		if err != nil {
			return nil, "", err
		}
		return results, "created host record " + c.args[0], nil
	case "delete":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		deletedRefs, err := client.DeleteHostRec(ctx, c.args[0])
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" host records for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

func (c command) runZoneAuth(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(0, 1)
		if err != nil {
			return nil, "", err
		}
		if len(c.args) == 0 {
			results, err = client.GetAuthZones(ctx)
		} else {
			results, err = client.GetAuthZonesByDomain(ctx, c.args[0])
		}
		return results, "", err
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

func (c command) runZoneDelegated(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "get":
		err = c.checkArgs(0, 1)
		if err != nil {
			return nil, "", err
		}
		if len(c.args) == 0 {
			const pageSize = 200
			results, err = client.GetDelegatedZones(ctx, pageSize)
		} else {
			results, err = client.GetDelegatedZonesByDomain(ctx, c.args[0])
		}
		return results, "", err
	case "create":
		if len(c.args) < 3 { //nolint:gomnd
			return nil, "", fmt.Errorf("%w: zone-delegated create takes a "+
				"domain name, a TTL and at least one name=address delegate",
				ErrArgumentsCount)
		}
		ttl, err := strconv.ParseUint(c.args[1], 10, 32)
		if err != nil {
			return nil, "", fmt.Errorf("parsing delegation TTL: %w", err)
		}
		delegates, err := parseDelegates(c.args[2:])
		if err != nil {
			return nil, "", err
		}
		results, err = client.CreateDelegatedZone(ctx, c.args[0],
			delegates, uint32(ttl))
		if err != nil {
			return nil, "", err
		}
		return results, "delegated zone " + c.args[0], nil
	case "modify-ttl":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		ttl, err := strconv.ParseUint(c.args[1], 10, 32)
		if err != nil {
			return nil, "", fmt.Errorf("parsing delegation TTL: %w", err)
		}
		results, err = client.ModifyDelegatedZone(ctx, c.args[0],
			map[string]any{"delegated_ttl": uint32(ttl)})
		if err != nil {
			return nil, "", err
		}
		return results, "changed delegation TTL of " + c.args[0] +
			" to " + c.args[1] + " seconds", nil
	case "delete":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		deletedRefs, err := client.DeleteDelegatedZone(ctx, c.args[0])
		if err != nil {
			return nil, "", err
		}
		return deletedRefs, "deleted " + strconv.Itoa(len(deletedRefs)) +
			" delegated zones for " + c.args[0], nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

func (c command) runRef(ctx context.Context, client *wapi.Client) (
	results any, notification string, err error) {
	switch c.verb {
	case "delete":
		err = c.checkArgs(1)
		if err != nil {
			return nil, "", err
		}
		deletedRef, err := client.DeleteRef(ctx, wapi.Ref(c.args[0]))
		if err != nil {
			return nil, "", err
		}
		return deletedRef, "deleted " + deletedRef, nil
	case "modify-ttl":
		err = c.checkArgs(2) //nolint:gomnd
		if err != nil {
			return nil, "", err
		}
		ttl, err := strconv.ParseUint(c.args[1], 10, 32)
		if err != nil {
			return nil, "", fmt.Errorf("parsing TTL: %w", err)
		}
		results, err = client.ModifyTTL(ctx, wapi.Ref(c.args[0]), uint32(ttl))
		if err != nil {
			return nil, "", err
		}
		return results, "changed TTL of " + c.args[0] +
			" to " + c.args[1] + " seconds", nil
	default:
		return nil, "", fmt.Errorf("%w: %s %s", ErrVerbUnknown, c.object, c.verb)
	}
}

var ErrDelegateNotValid = errors.New("delegate is not valid")

// parseDelegates parses name=address pairs, for example
// ns1.example.com=10.0.0.53.
func parseDelegates(args []string) (delegates []wapi.Delegate, err error) {
	delegates = make([]wapi.Delegate, 0, len(args))
	for _, arg := range args {
		name, address, found := strings.Cut(arg, "=")
		if !found || name == "" || address == "" {
			return nil, fmt.Errorf("%w: %q is not in the name=address format",
				ErrDelegateNotValid, arg)
		}
		delegates = append(delegates, wapi.Delegate{
			Name:    name,
			Address: address,
		})
	}
	return delegates, nil
}

func printResults(results any) (err error) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(results)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}
