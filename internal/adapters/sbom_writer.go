package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gemlock/internal/ports"
	"gemlock/internal/types"
)

// DefaultSBOMNamespace prefixes the SPDX document namespace when none is
// configured.
const DefaultSBOMNamespace = "https://spdx.org/spdxdocs/gemlock"

type SBOMWriterAdapter struct {
	NamespaceBase string
}

func NewSBOMWriterAdapter() SBOMWriterAdapter {
	return SBOMWriterAdapter{}
}

type spdxCreationInfo struct {
	Created  string   `json:"created"`
	Creators []string `json:"creators"`
}

type spdxExternalRef struct {
	ReferenceCategory string `json:"referenceCategory"`
	ReferenceType     string `json:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator"`
}

type spdxPackage struct {
	SPDXID           string            `json:"SPDXID"`
	Name             string            `json:"name"`
	VersionInfo      string            `json:"versionInfo"`
	DownloadLocation string            `json:"downloadLocation"`
	LicenseConcluded string            `json:"licenseConcluded"`
	LicenseDeclared  string            `json:"licenseDeclared"`
	Supplier         string            `json:"supplier"`
	ExternalRefs     []spdxExternalRef `json:"externalRefs"`
}

type spdxRelationship struct {
	SpdxElementID      string `json:"spdxElementId"`
	RelationshipType   string `json:"relationshipType"`
	RelatedSpdxElement string `json:"relatedSpdxElement"`
}

type spdxDocument struct {
	SPDXVersion       string             `json:"spdxVersion"`
	DataLicense       string             `json:"dataLicense"`
	SPDXID            string             `json:"SPDXID"`
	Name              string             `json:"name"`
	DocumentNamespace string             `json:"documentNamespace"`
	CreationInfo      spdxCreationInfo   `json:"creationInfo"`
	Packages          []spdxPackage      `json:"packages"`
	Relationships     []spdxRelationship `json:"relationships"`
	DocumentDescribes []string           `json:"documentDescribes"`
}

func (a SBOMWriterAdapter) WriteSBOM(path string, name string, createdAt string, summary types.Summary) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sbom output path is empty")
	}
	if strings.TrimSpace(name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sbom document name is empty")
	}
	doc := a.buildDocument(name, sbomTimestamp(createdAt, time.Now), summary)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal sbom payload").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create sbom directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write sbom file").
			WithCause(err)
	}
	return nil
}

func (a SBOMWriterAdapter) buildDocument(name string, created string, summary types.Summary) spdxDocument {
	doc := spdxDocument{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		SPDXID:            "SPDXRef-DOCUMENT",
		Name:              name,
		DocumentNamespace: fmt.Sprintf("%s/%s", a.namespaceBase(), namespaceSegment(name)),
		CreationInfo: spdxCreationInfo{
			Created:  created,
			Creators: []string{"Tool: gemlock"},
		},
		Packages:          []spdxPackage{},
		Relationships:     []spdxRelationship{},
		DocumentDescribes: []string{},
	}

	ids := map[string]string{}
	for _, entry := range summary.Entries() {
		id := spdxPackageID(entry.Name, entry.Version)
		ids[entry.Name] = id
		doc.Packages = append(doc.Packages, spdxPackage{
			SPDXID:           id,
			Name:             entry.Name,
			VersionInfo:      entry.Version,
			DownloadLocation: "NOASSERTION",
			LicenseConcluded: "NOASSERTION",
			LicenseDeclared:  "NOASSERTION",
			Supplier:         "NOASSERTION",
			ExternalRefs: []spdxExternalRef{{
				ReferenceCategory: "PACKAGE-MANAGER",
				ReferenceType:     "purl",
				ReferenceLocator:  fmt.Sprintf("pkg:gem/%s@%s", entry.Name, entry.Version),
			}},
		})
	}

	for _, direct := range summary.DirectDependencies {
		id, ok := ids[direct]
		if !ok {
			continue
		}
		doc.DocumentDescribes = append(doc.DocumentDescribes, id)
		doc.Relationships = append(doc.Relationships, spdxRelationship{
			SpdxElementID:      "SPDXRef-DOCUMENT",
			RelationshipType:   "DESCRIBES",
			RelatedSpdxElement: id,
		})
	}

	for _, parent := range summary.PackageNames() {
		children, _ := summary.Children(parent)
		for _, child := range children {
			childID, ok := ids[child]
			if !ok {
				continue
			}
			doc.Relationships = append(doc.Relationships, spdxRelationship{
				SpdxElementID:      ids[parent],
				RelationshipType:   "DEPENDS_ON",
				RelatedSpdxElement: childID,
			})
		}
	}
	return doc
}

func (a SBOMWriterAdapter) namespaceBase() string {
	base := strings.TrimRight(strings.TrimSpace(a.NamespaceBase), "/")
	if base == "" {
		return DefaultSBOMNamespace
	}
	return base
}

func namespaceSegment(name string) string {
	return strings.NewReplacer(" ", "-", "/", "-").Replace(strings.TrimSpace(name))
}

func spdxPackageID(name string, version string) string {
	seed := fmt.Sprintf("%s@%s", name, version)
	hash := sha256.Sum256([]byte(seed))
	return "SPDXRef-Package-" + hex.EncodeToString(hash[:8])
}

var _ ports.SBOMPort = SBOMWriterAdapter{}
