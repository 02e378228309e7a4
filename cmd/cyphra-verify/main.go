package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"cyphra.co/verify/blobid"
	"cyphra.co/verify/inspect"
	"cyphra.co/verify/keys"
	"cyphra.co/verify/message"
	"cyphra.co/verify/model"
	"cyphra.co/verify/protocol"
	"cyphra.co/verify/signature"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "digest":
		return cmdDigest(args[1:], out, errOut)
	case "sign":
		return cmdSign(args[1:], out, errOut)
	case "verify":
		return cmdVerify(args[1:], out, errOut)
	case "normalize":
		return cmdNormalize(args[1:], out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "blob-id":
		return cmdBlobID(args[1:], out, errOut)
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "cyphra-verify: contribution verification codec CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cyphra-verify digest --campaign <id> --contribution <id> [--content-hex <hex>|--content-file <file>] --score <n> [--alg <name>]")
	fmt.Fprintln(w, "  cyphra-verify sign [digest flags] [--seed-hex <64hex>|--signer <name> [--role <role>]|--key-file <file>] [--json]")
	fmt.Fprintln(w, "  cyphra-verify verify --digest-hex <64hex> --sig-b64 <sig> --pub <ed25519:base64>")
	fmt.Fprintln(w, "  cyphra-verify normalize --sig-hex <hex>")
	fmt.Fprintln(w, "  cyphra-verify decode --shape <shape> --slots <hex,hex,...> [--status failure] [--error <msg>]")
	fmt.Fprintln(w, "  cyphra-verify blob-id <file>")
	fmt.Fprintln(w, "  cyphra-verify key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  cyphra-verify key derive --name <name> --role <role> [--force]")
	fmt.Fprintln(w, "  cyphra-verify key export --name <name> [--role <role>]")
	fmt.Fprintln(w, "  cyphra-verify key list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Shapes: bool | uint64 | (shape, shape, ...)")
}

type messageFlags struct {
	campaign     string
	contribution string
	contentHex   string
	contentFile  string
	score        uint64
	alg          string
}

func (m *messageFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&m.campaign, "campaign", "", "Campaign identifier")
	fs.StringVar(&m.contribution, "contribution", "", "Contribution identifier")
	fs.StringVar(&m.contentHex, "content-hex", "", "Content hash, hex")
	fs.StringVar(&m.contentFile, "content-file", "", "Derive content hash from file bytes")
	fs.Uint64Var(&m.score, "score", 0, "Quality score")
	fs.StringVar(&m.alg, "alg", string(protocol.V1.Digest), "Digest algorithm")
}

func (m *messageFlags) params() protocol.Params {
	p := protocol.V1
	p.Digest = protocol.DigestAlg(m.alg)
	return p
}

func (m *messageFlags) build(errOut io.Writer) (c message.Contribution, blobID string, ok bool) {
	var contentHash []byte
	switch {
	case m.contentHex != "" && m.contentFile != "":
		fmt.Fprintln(errOut, "use only one of --content-hex and --content-file")
		return message.Contribution{}, "", false
	case m.contentHex != "":
		b, err := hex.DecodeString(strings.TrimPrefix(m.contentHex, "0x"))
		if err != nil {
			fmt.Fprintf(errOut, "invalid --content-hex: %v\n", err)
			return message.Contribution{}, "", false
		}
		contentHash = b
	case m.contentFile != "":
		data, err := os.ReadFile(m.contentFile)
		if err != nil {
			fmt.Fprintf(errOut, "read --content-file: %v\n", err)
			return message.Contribution{}, "", false
		}
		h, err := blobid.ContentHash(data)
		if err != nil {
			fmt.Fprintf(errOut, "content hash: %v\n", err)
			return message.Contribution{}, "", false
		}
		contentHash = h
		blobID = blobid.New(data)
	}
	return message.Contribution{
		CampaignID:     m.campaign,
		ContributionID: m.contribution,
		ContentHash:    contentHash,
		QualityScore:   m.score,
	}, blobID, true
}

func cmdDigest(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("digest", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var mf messageFlags
	mf.register(fs)
	var showPreimage bool
	fs.BoolVar(&showPreimage, "preimage", false, "Also print the pre-image hex")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	c, _, ok := mf.build(errOut)
	if !ok {
		return 2
	}
	pre, err := c.Encode(mf.params())
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	digest, err := message.Digest(mf.params().Digest, pre)
	if err != nil {
		fmt.Fprintf(errOut, "digest: %v\n", err)
		return 1
	}
	if showPreimage {
		fmt.Fprintf(out, "preimage: %s\n", hex.EncodeToString(pre))
	}
	fmt.Fprintln(out, hex.EncodeToString(digest))
	return 0
}

func cmdSign(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var mf messageFlags
	mf.register(fs)
	var seedHex, signerName, signerRole, keyFile, keyDir string
	var asJSON bool
	fs.StringVar(&seedHex, "seed-hex", "", "Inline ed25519 seed, hex")
	fs.StringVar(&signerName, "signer", "", "Stored key name")
	fs.StringVar(&signerRole, "role", "", "Stored key role")
	fs.StringVar(&keyFile, "key-file", "", "Seed file path")
	fs.StringVar(&keyDir, "key-dir", "", "Key store directory")
	fs.BoolVar(&asJSON, "json", false, "Emit a signed-contribution JSON record")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ks, err := keys.CreateKeyStore(keyDir)
	if err != nil {
		fmt.Fprintf(errOut, "key store: %v\n", err)
		return 1
	}
	seed, err := ks.LoadSeed(seedHex, signerName, signerRole, keyFile)
	if err != nil {
		fmt.Fprintf(errOut, "load seed: %v\n", err)
		return 1
	}
	signer, err := signature.LocalSignerFromSeed(seed)
	if err != nil {
		fmt.Fprintf(errOut, "signer: %v\n", err)
		return 1
	}

	c, blobID, ok := mf.build(errOut)
	if !ok {
		return 2
	}
	digest, err := c.Digest(mf.params())
	if err != nil {
		fmt.Fprintf(errOut, "digest: %v\n", err)
		return 1
	}
	raw, err := signer.Sign(digest)
	if err != nil {
		fmt.Fprintf(errOut, "sign: %v\n", err)
		return 1
	}

	if !asJSON {
		fmt.Fprintln(out, base64.StdEncoding.EncodeToString(raw))
		return 0
	}

	signerKey, err := keys.SignerKeyFromPublicKey(signer.Public())
	if err != nil {
		fmt.Fprintf(errOut, "signer key: %v\n", err)
		return 1
	}
	record := model.SignedContribution{
		CampaignID:     c.CampaignID,
		ContributionID: c.ContributionID,
		BlobID:         blobID,
		ContentHash:    hex.EncodeToString(c.ContentHash),
		QualityScore:   c.QualityScore,
		Digest:         hex.EncodeToString(digest),
		Signature:      base64.StdEncoding.EncodeToString(raw),
		SignerKey:      signerKey,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		fmt.Fprintf(errOut, "encode json: %v\n", err)
		return 1
	}
	return 0
}

func cmdVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var digestHex, sigB64, pub string
	fs.StringVar(&digestHex, "digest-hex", "", "Message digest, hex")
	fs.StringVar(&sigB64, "sig-b64", "", "Signature, base64 (raw or enveloped)")
	fs.StringVar(&pub, "pub", "", "Signer key (ed25519:<base64>)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if digestHex == "" || sigB64 == "" || pub == "" {
		fmt.Fprintln(errOut, "usage: cyphra-verify verify --digest-hex <64hex> --sig-b64 <sig> --pub <ed25519:base64>")
		return 2
	}

	digest, err := hex.DecodeString(strings.TrimPrefix(digestHex, "0x"))
	if err != nil {
		fmt.Fprintf(errOut, "invalid --digest-hex: %v\n", err)
		return 2
	}
	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --sig-b64: %v\n", err)
		return 2
	}
	pubKey, err := keys.ParseSignerKey(pub)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --pub: %v\n", err)
		return 2
	}
	if err := signature.Verify(pubKey, digest, sig); err != nil {
		fmt.Fprintln(errOut, model.Classify(err))
		return 1
	}
	fmt.Fprintln(out, "OK")
	return 0
}

func cmdNormalize(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var sigHex string
	fs.StringVar(&sigHex, "sig-hex", "", "Signature envelope, hex")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if sigHex == "" {
		fmt.Fprintln(errOut, "usage: cyphra-verify normalize --sig-hex <hex>")
		return 2
	}
	sig, err := hex.DecodeString(strings.TrimPrefix(sigHex, "0x"))
	if err != nil {
		fmt.Fprintf(errOut, "invalid --sig-hex: %v\n", err)
		return 2
	}
	raw, err := signature.Normalize(sig)
	if err != nil {
		fmt.Fprintf(errOut, "normalize: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, hex.EncodeToString(raw))
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var shapeStr, slotsStr, statusStr, errStr string
	fs.StringVar(&shapeStr, "shape", "", "Expected return shape")
	fs.StringVar(&slotsStr, "slots", "", "Comma-separated hex byte sequences")
	fs.StringVar(&statusStr, "status", string(inspect.StatusSuccess), "Call status (success|failure)")
	fs.StringVar(&errStr, "error", "", "Chain error detail for failed calls")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if shapeStr == "" {
		fmt.Fprintln(errOut, "usage: cyphra-verify decode --shape <shape> --slots <hex,hex,...>")
		return 2
	}

	shape, err := parseShape(shapeStr)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --shape: %v\n", err)
		return 2
	}
	var slots [][]byte
	if slotsStr != "" {
		for _, part := range strings.Split(slotsStr, ",") {
			b, err := hex.DecodeString(strings.TrimSpace(strings.TrimPrefix(part, "0x")))
			if err != nil {
				fmt.Fprintf(errOut, "invalid slot %q: %v\n", part, err)
				return 2
			}
			slots = append(slots, b)
		}
	}

	res := inspect.Result{Status: inspect.Status(statusStr), Error: errStr, Slots: slots}
	v, err := inspect.Decode(res, shape)
	if err != nil {
		fmt.Fprintln(errOut, model.Classify(err))
		return 1
	}
	fmt.Fprintln(out, formatValue(v))
	return 0
}

func cmdBlobID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("blob-id", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: cyphra-verify blob-id <file>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, blobid.New(b))
	return 0
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: cyphra-verify key <init|derive|export|list> ...")
		return 2
	}
	sub := args[0]
	fs := flag.NewFlagSet("key "+sub, flag.ContinueOnError)
	fs.SetOutput(errOut)
	var name, role, seedHex, keyDir string
	var force bool
	fs.StringVar(&name, "name", "", "Key name")
	fs.StringVar(&role, "role", "", "Key role")
	fs.StringVar(&seedHex, "seed-hex", "", "Seed, hex (generated when omitted)")
	fs.StringVar(&keyDir, "key-dir", "", "Key store directory")
	fs.BoolVar(&force, "force", false, "Overwrite an existing key")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	ks, err := keys.CreateKeyStore(keyDir)
	if err != nil {
		fmt.Fprintf(errOut, "key store: %v\n", err)
		return 1
	}

	switch sub {
	case "init":
		if name == "" {
			fmt.Fprintln(errOut, "usage: cyphra-verify key init --name <name> [--seed-hex <64hex>] [--force]")
			return 2
		}
		var seed []byte
		if seedHex != "" {
			seed, err = keys.ParseSeedHex(seedHex)
			if err != nil {
				fmt.Fprintf(errOut, "invalid --seed-hex: %v\n", err)
				return 2
			}
		} else {
			seed = make([]byte, 32)
			if _, err := rand.Read(seed); err != nil {
				fmt.Fprintf(errOut, "generate seed: %v\n", err)
				return 1
			}
		}
		signerKey, path, err := ks.InitializeRootKey(name, seed, force)
		if err != nil {
			fmt.Fprintf(errOut, "init key: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "%s\n%s\n", signerKey, path)
		return 0
	case "derive":
		if name == "" || role == "" {
			fmt.Fprintln(errOut, "usage: cyphra-verify key derive --name <name> --role <role> [--force]")
			return 2
		}
		signerKey, path, err := ks.DeriveKeyFromRole(name, role, force)
		if err != nil {
			fmt.Fprintf(errOut, "derive key: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "%s\n%s\n", signerKey, path)
		return 0
	case "export":
		if name == "" {
			fmt.Fprintln(errOut, "usage: cyphra-verify key export --name <name> [--role <role>]")
			return 2
		}
		signerKey, err := ks.ExportKey(name, role)
		if err != nil {
			fmt.Fprintf(errOut, "export key: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, signerKey)
		return 0
	case "list":
		entries, err := ks.ListKeys()
		if err != nil {
			fmt.Fprintf(errOut, "list keys: %v\n", err)
			return 1
		}
		for _, e := range entries {
			if len(e.Roles) == 0 {
				fmt.Fprintln(out, e.Identifier)
				continue
			}
			fmt.Fprintf(out, "%s\t%s\n", e.Identifier, strings.Join(e.Roles, ","))
		}
		return 0
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n", sub)
		return 2
	}
}

func formatValue(v inspect.Value) string {
	switch v.Kind() {
	case inspect.ShapeBool:
		b, _ := v.Bool()
		return fmt.Sprintf("%v", b)
	case inspect.ShapeUInt64:
		u, _ := v.Uint64()
		return fmt.Sprintf("%d", u)
	case inspect.ShapeTuple:
		elems, _ := v.Tuple()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = formatValue(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<invalid>"
	}
}
