// go-colord - read and manipulate ICC colour profiles
// Copyright (C) 2026  Richard Hughes <richard@hughsie.com>
//
// This library is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 2.1 of the License, or (at your option) any later version.
//
// This library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with this library; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301 USA

package icc

import "strings"

// localeText caches the per-locale strings decoded from a profile's MLU
// tags, keyed the way colord keys them: "" for the untranslated (en_US)
// default, otherwise the "ll_CC" locale with any ".codeset" or "(modifier)"
// suffix stripped.
type localeText struct {
	cache map[string]string
}

// localeKey normalises a locale string into the cache key used by the MLU
// lookup: en_US (the ICC default locale) collapses to "", anything else has
// its trailing ".codeset"/"(modifier)" stripped.
func localeKey(locale string) string {
	if locale == "" || strings.HasPrefix(locale, "en_US") {
		return ""
	}
	if i := strings.IndexAny(locale, ".("); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

// splitLocale decomposes a non-default locale key into its 2-letter
// language and (optional) 2-letter country code, matching the "ll_CC"
// convention used by ICC MLU language/country codes.
func splitLocale(key string) (language, country string, ok bool) {
	if key == "" {
		return "en", "US", true
	}
	language = key
	if i := strings.IndexByte(key, '_'); i >= 0 {
		language = key[:i]
		country = key[i+1:]
	}
	if len(language) != 2 {
		return "", "", false
	}
	if country != "" && len(country) != 2 {
		return "", "", false
	}
	return language, country, true
}

// lookup resolves a locale-keyed string, decoding and caching it from the
// first tag in sigs that is present. Mirrors cd_icc_get_mluc_data: the
// cache is keyed by the normalised locale, and the MLU is searched for an
// exact language/country match (lcms maps "" to en/US).
func (t *localeText) lookup(p *Profile, locale string, sigs []TagType) (string, error) {
	key := localeKey(locale)
	if t.cache == nil {
		t.cache = make(map[string]string)
	}
	if v, ok := t.cache[key]; ok {
		return v, nil
	}

	language, country, ok := splitLocale(key)
	if !ok {
		return "", newError(ErrInvalidLocale, "invalid locale: "+locale)
	}

	var mlu MultiLocalizedUnicode
	var plain string
	var havePlain bool
	for _, sig := range sigs {
		data, present := p.TagData[sig]
		if !present {
			continue
		}
		decoded, err := decodeMLUC(data)
		if err == nil {
			mlu = decoded
			break
		}
		if err != errUnexpectedType {
			return "", err
		}
		s, terr := decodeText(data)
		if terr == nil {
			plain = s
			havePlain = true
			break
		}
	}
	if mlu == nil && !havePlain {
		return "", newError(ErrNoData, "no description/copyright tag present")
	}

	value := plain
	if mlu != nil {
		value = matchLocalizedUnicode(mlu, language, country)
	}
	t.cache[key] = value
	return value, nil
}

// matchLocalizedUnicode finds the best entry in an MLU for the requested
// language/country, falling back to any entry with a matching language,
// then to the first entry present.
func matchLocalizedUnicode(mlu MultiLocalizedUnicode, language, country string) string {
	for _, e := range mlu {
		if strings.EqualFold(e.Language, language) && strings.EqualFold(e.Country, country) {
			return e.Value
		}
	}
	for _, e := range mlu {
		if strings.EqualFold(e.Language, language) {
			return e.Value
		}
	}
	if len(mlu) > 0 {
		return mlu[0].Value
	}
	return ""
}

// Description returns the profile description for the given locale (e.g.
// "en_GB.UTF-8"), or the untranslated default when locale is "". If no
// entry matches the locale exactly, an entry for the same language is
// returned, and failing that the first entry.
func (p *Profile) Description(locale string) (string, error) {
	return p.description.lookup(p, locale, []TagType{ProfileDescriptionML, ProfileDescription})
}

// CopyrightText returns the profile's copyright notice for the given locale.
func (p *Profile) CopyrightText(locale string) (string, error) {
	return p.copyright.lookup(p, locale, []TagType{Copyright})
}

// Manufacturer returns the device manufacturer description for the given
// locale.
func (p *Profile) Manufacturer(locale string) (string, error) {
	return p.manufacturer.lookup(p, locale, []TagType{DeviceMfgDesc})
}

// Model returns the device model description for the given locale.
func (p *Profile) Model(locale string) (string, error) {
	return p.model.lookup(p, locale, []TagType{DeviceModelDesc})
}
