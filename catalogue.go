// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import "strings"

// templateTable holds every canonical CRC template this package knows
// about, keyed by its canonical lowercase name. Values are drawn from
// the reveng.sourceforge.net CRC catalogue (the same source the
// teacher package's presets cite).
var templateTable = map[string]Template{
	"crc-10-atm": {Params: Params{Width: 10, Poly: 0x0000000000000233, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000199, Residue: 0x0000000000000000},
	"crc-10-cdma2000": {Params: Params{Width: 10, Poly: 0x00000000000003D9, Init: 0x00000000000003FF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000233, Residue: 0x0000000000000000},
	"crc-10-gsm": {Params: Params{Width: 10, Poly: 0x0000000000000175, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x00000000000003FF}, Check: 0x000000000000012A, Residue: 0x00000000000000C6},
	"crc-11-flexray": {Params: Params{Width: 11, Poly: 0x0000000000000385, Init: 0x000000000000001A, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000005A3, Residue: 0x0000000000000000},
	"crc-11-umts": {Params: Params{Width: 11, Poly: 0x0000000000000307, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000061, Residue: 0x0000000000000000},
	"crc-12-cdma2000": {Params: Params{Width: 12, Poly: 0x0000000000000F13, Init: 0x0000000000000FFF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000D4D, Residue: 0x0000000000000000},
	"crc-12-dect": {Params: Params{Width: 12, Poly: 0x000000000000080F, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000F5B, Residue: 0x0000000000000000},
	"crc-12-gsm": {Params: Params{Width: 12, Poly: 0x0000000000000D31, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000FFF}, Check: 0x0000000000000B34, Residue: 0x0000000000000178},
	"crc-12-umts": {Params: Params{Width: 12, Poly: 0x000000000000080F, Init: 0x0000000000000000, RefIn: false, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000DAF, Residue: 0x0000000000000000},
	"crc-13-bbc": {Params: Params{Width: 13, Poly: 0x0000000000001CF5, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000004FA, Residue: 0x0000000000000000},
	"crc-14-darc": {Params: Params{Width: 14, Poly: 0x0000000000000805, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x000000000000082D, Residue: 0x0000000000000000},
	"crc-14-gsm": {Params: Params{Width: 14, Poly: 0x000000000000202D, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000003FFF}, Check: 0x00000000000030AE, Residue: 0x000000000000031E},
	"crc-15-can": {Params: Params{Width: 15, Poly: 0x0000000000004599, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000059E, Residue: 0x0000000000000000},
	"crc-15-mpt1327": {Params: Params{Width: 15, Poly: 0x0000000000006815, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000001}, Check: 0x0000000000002566, Residue: 0x0000000000006815},
	"crc-16-arc": {Params: Params{Width: 16, Poly: 0x0000000000008005, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x000000000000BB3D, Residue: 0x0000000000000000},
	"crc-16-cdma2000": {Params: Params{Width: 16, Poly: 0x000000000000C867, Init: 0x000000000000FFFF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000004C06, Residue: 0x0000000000000000},
	"crc-16-cms": {Params: Params{Width: 16, Poly: 0x0000000000008005, Init: 0x000000000000FFFF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000AEE7, Residue: 0x0000000000000000},
	"crc-16-dds-110": {Params: Params{Width: 16, Poly: 0x0000000000008005, Init: 0x000000000000800D, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000009ECF, Residue: 0x0000000000000000},
	"crc-16-dect-r": {Params: Params{Width: 16, Poly: 0x0000000000000589, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000001}, Check: 0x000000000000007E, Residue: 0x0000000000000589},
	"crc-16-dect-x": {Params: Params{Width: 16, Poly: 0x0000000000000589, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000007F, Residue: 0x0000000000000000},
	"crc-16-dnp": {Params: Params{Width: 16, Poly: 0x0000000000003D65, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x000000000000FFFF}, Check: 0x000000000000EA82, Residue: 0x00000000000066C5},
	"crc-16-en-13757": {Params: Params{Width: 16, Poly: 0x0000000000003D65, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x000000000000FFFF}, Check: 0x000000000000C2B7, Residue: 0x000000000000A366},
	"crc-16-genibus": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x000000000000FFFF, RefIn: false, RefOut: false, XorOut: 0x000000000000FFFF}, Check: 0x000000000000D64E, Residue: 0x0000000000001D0F},
	"crc-16-gsm": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x000000000000FFFF}, Check: 0x000000000000CE3C, Residue: 0x0000000000001D0F},
	"crc-16-ibm-3740": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x000000000000FFFF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000029B1, Residue: 0x0000000000000000},
	"crc-16-ibm-sdlc": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x000000000000FFFF, RefIn: true, RefOut: true, XorOut: 0x000000000000FFFF}, Check: 0x000000000000906E, Residue: 0x000000000000F0B8},
	"crc-16-iso-iec-14443-3-a": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x000000000000C6C6, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x000000000000BF05, Residue: 0x0000000000000000},
	"crc-16-kermit": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000002189, Residue: 0x0000000000000000},
	"crc-16-lj1200": {Params: Params{Width: 16, Poly: 0x0000000000006F63, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000BDF4, Residue: 0x0000000000000000},
	"crc-16-m17": {Params: Params{Width: 16, Poly: 0x0000000000005935, Init: 0x000000000000FFFF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000772B, Residue: 0x0000000000000000},
	"crc-16-maxim-dow": {Params: Params{Width: 16, Poly: 0x0000000000008005, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x000000000000FFFF}, Check: 0x00000000000044C2, Residue: 0x000000000000B001},
	"crc-16-mcrf4xx": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x000000000000FFFF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000006F91, Residue: 0x0000000000000000},
	"crc-16-modbus": {Params: Params{Width: 16, Poly: 0x0000000000008005, Init: 0x000000000000FFFF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000004B37, Residue: 0x0000000000000000},
	"crc-16-nrsc-5": {Params: Params{Width: 16, Poly: 0x000000000000080B, Init: 0x000000000000FFFF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x000000000000A066, Residue: 0x0000000000000000},
	"crc-16-opensafety-a": {Params: Params{Width: 16, Poly: 0x0000000000005935, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000005D38, Residue: 0x0000000000000000},
	"crc-16-opensafety-b": {Params: Params{Width: 16, Poly: 0x000000000000755B, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000020FE, Residue: 0x0000000000000000},
	"crc-16-profibus": {Params: Params{Width: 16, Poly: 0x0000000000001DCF, Init: 0x000000000000FFFF, RefIn: false, RefOut: false, XorOut: 0x000000000000FFFF}, Check: 0x000000000000A819, Residue: 0x000000000000E394},
	"crc-16-riello": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x000000000000B2AA, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x00000000000063D0, Residue: 0x0000000000000000},
	"crc-16-spi-fujitsu": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x0000000000001D0F, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000E5CC, Residue: 0x0000000000000000},
	"crc-16-t10-dif": {Params: Params{Width: 16, Poly: 0x0000000000008BB7, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000D0DB, Residue: 0x0000000000000000},
	"crc-16-teledisk": {Params: Params{Width: 16, Poly: 0x000000000000A097, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000FB3, Residue: 0x0000000000000000},
	"crc-16-tms37157": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x00000000000089EC, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x00000000000026B1, Residue: 0x0000000000000000},
	"crc-16-umts": {Params: Params{Width: 16, Poly: 0x0000000000008005, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000FEE8, Residue: 0x0000000000000000},
	"crc-16-usb": {Params: Params{Width: 16, Poly: 0x0000000000008005, Init: 0x000000000000FFFF, RefIn: true, RefOut: true, XorOut: 0x000000000000FFFF}, Check: 0x000000000000B4C8, Residue: 0x000000000000B001},
	"crc-16-xmodem": {Params: Params{Width: 16, Poly: 0x0000000000001021, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000031C3, Residue: 0x0000000000000000},
	"crc-17-can-fd": {Params: Params{Width: 17, Poly: 0x000000000001685B, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000004F03, Residue: 0x0000000000000000},
	"crc-21-can-fd": {Params: Params{Width: 21, Poly: 0x0000000000102899, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000ED841, Residue: 0x0000000000000000},
	"crc-24-ble": {Params: Params{Width: 24, Poly: 0x000000000000065B, Init: 0x0000000000555555, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000C25A56, Residue: 0x0000000000000000},
	"crc-24-flexray-a": {Params: Params{Width: 24, Poly: 0x00000000005D6DCB, Init: 0x0000000000FEDCBA, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000007979BD, Residue: 0x0000000000000000},
	"crc-24-flexray-b": {Params: Params{Width: 24, Poly: 0x00000000005D6DCB, Init: 0x0000000000ABCDEF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000001F23B8, Residue: 0x0000000000000000},
	"crc-24-interlaken": {Params: Params{Width: 24, Poly: 0x0000000000328B63, Init: 0x0000000000FFFFFF, RefIn: false, RefOut: false, XorOut: 0x0000000000FFFFFF}, Check: 0x0000000000B4F3E6, Residue: 0x0000000000144E63},
	"crc-24-lte-a": {Params: Params{Width: 24, Poly: 0x0000000000864CFB, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000CDE703, Residue: 0x0000000000000000},
	"crc-24-lte-b": {Params: Params{Width: 24, Poly: 0x0000000000800063, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000023EF52, Residue: 0x0000000000000000},
	"crc-24-openpgp": {Params: Params{Width: 24, Poly: 0x0000000000864CFB, Init: 0x0000000000B704CE, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000021CF02, Residue: 0x0000000000000000},
	"crc-24-os-9": {Params: Params{Width: 24, Poly: 0x0000000000800063, Init: 0x0000000000FFFFFF, RefIn: false, RefOut: false, XorOut: 0x0000000000FFFFFF}, Check: 0x0000000000200FA5, Residue: 0x0000000000800FE3},
	"crc-3-gsm": {Params: Params{Width: 3, Poly: 0x0000000000000003, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000007}, Check: 0x0000000000000004, Residue: 0x0000000000000002},
	"crc-3-rohc": {Params: Params{Width: 3, Poly: 0x0000000000000003, Init: 0x0000000000000007, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000006, Residue: 0x0000000000000000},
	"crc-30-cdma": {Params: Params{Width: 30, Poly: 0x000000002030B9C7, Init: 0x000000003FFFFFFF, RefIn: false, RefOut: false, XorOut: 0x000000003FFFFFFF}, Check: 0x0000000004C34ABF, Residue: 0x0000000034EFA55A},
	"crc-31-philips": {Params: Params{Width: 31, Poly: 0x0000000004C11DB7, Init: 0x000000007FFFFFFF, RefIn: false, RefOut: false, XorOut: 0x000000007FFFFFFF}, Check: 0x000000000CE9E46C, Residue: 0x000000004EAF26F1},
	"crc-32-aixm": {Params: Params{Width: 32, Poly: 0x00000000814141AB, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000003010BF7F, Residue: 0x0000000000000000},
	"crc-32-autosar": {Params: Params{Width: 32, Poly: 0x00000000F4ACFB13, Init: 0x00000000FFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000FFFFFFFF}, Check: 0x000000001697D06A, Residue: 0x00000000904CDDBF},
	"crc-32-base91-d": {Params: Params{Width: 32, Poly: 0x00000000A833982B, Init: 0x00000000FFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000FFFFFFFF}, Check: 0x0000000087315576, Residue: 0x0000000045270551},
	"crc-32-bzip2": {Params: Params{Width: 32, Poly: 0x0000000004C11DB7, Init: 0x00000000FFFFFFFF, RefIn: false, RefOut: false, XorOut: 0x00000000FFFFFFFF}, Check: 0x00000000FC891918, Residue: 0x00000000C704DD7B},
	"crc-32-cd-rom-edc": {Params: Params{Width: 32, Poly: 0x000000008001801B, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x000000006EC2EDC4, Residue: 0x0000000000000000},
	"crc-32-cksum": {Params: Params{Width: 32, Poly: 0x0000000004C11DB7, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x00000000FFFFFFFF}, Check: 0x00000000765E7680, Residue: 0x00000000C704DD7B},
	"crc-32-iscsi": {Params: Params{Width: 32, Poly: 0x000000001EDC6F41, Init: 0x00000000FFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000FFFFFFFF}, Check: 0x00000000E3069283, Residue: 0x00000000B798B438},
	"crc-32-iso-hdlc": {Params: Params{Width: 32, Poly: 0x0000000004C11DB7, Init: 0x00000000FFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000FFFFFFFF}, Check: 0x00000000CBF43926, Residue: 0x00000000DEBB20E3},
	"crc-32-jamcrc": {Params: Params{Width: 32, Poly: 0x0000000004C11DB7, Init: 0x00000000FFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x00000000340BC6D9, Residue: 0x0000000000000000},
	"crc-32-mef": {Params: Params{Width: 32, Poly: 0x00000000741B8CD7, Init: 0x00000000FFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x00000000D2C22F51, Residue: 0x0000000000000000},
	"crc-32-mpeg-2": {Params: Params{Width: 32, Poly: 0x0000000004C11DB7, Init: 0x00000000FFFFFFFF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000376E6E7, Residue: 0x0000000000000000},
	"crc-32-xfer": {Params: Params{Width: 32, Poly: 0x00000000000000AF, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000BD0BE338, Residue: 0x0000000000000000},
	"crc-4-g-704": {Params: Params{Width: 4, Poly: 0x0000000000000003, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000007, Residue: 0x0000000000000000},
	"crc-4-interlaken": {Params: Params{Width: 4, Poly: 0x0000000000000003, Init: 0x000000000000000F, RefIn: false, RefOut: false, XorOut: 0x000000000000000F}, Check: 0x000000000000000B, Residue: 0x0000000000000002},
	"crc-40-gsm": {Params: Params{Width: 40, Poly: 0x0000000004820009, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x000000FFFFFFFFFF}, Check: 0x000000D4164FC646, Residue: 0x000000C4FF8071FF},
	"crc-5-epc-c1g2": {Params: Params{Width: 5, Poly: 0x0000000000000009, Init: 0x0000000000000009, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000000, Residue: 0x0000000000000000},
	"crc-5-g-704": {Params: Params{Width: 5, Poly: 0x0000000000000015, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000007, Residue: 0x0000000000000000},
	"crc-5-usb": {Params: Params{Width: 5, Poly: 0x0000000000000005, Init: 0x000000000000001F, RefIn: true, RefOut: true, XorOut: 0x000000000000001F}, Check: 0x0000000000000019, Residue: 0x0000000000000006},
	"crc-6-cdma2000-a": {Params: Params{Width: 6, Poly: 0x0000000000000027, Init: 0x000000000000003F, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000000D, Residue: 0x0000000000000000},
	"crc-6-cdma2000-b": {Params: Params{Width: 6, Poly: 0x0000000000000007, Init: 0x000000000000003F, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000003B, Residue: 0x0000000000000000},
	"crc-6-darc": {Params: Params{Width: 6, Poly: 0x0000000000000019, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000026, Residue: 0x0000000000000000},
	"crc-6-g-704": {Params: Params{Width: 6, Poly: 0x0000000000000003, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000006, Residue: 0x0000000000000000},
	"crc-6-gsm": {Params: Params{Width: 6, Poly: 0x000000000000002F, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x000000000000003F}, Check: 0x0000000000000013, Residue: 0x000000000000003A},
	"crc-64-ecma-182": {Params: Params{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x6C40DF5F0B497347, Residue: 0x0000000000000000},
	"crc-64-go-iso": {Params: Params{Width: 64, Poly: 0x000000000000001B, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFFFFFFFFFF}, Check: 0xB90956C775A41001, Residue: 0x5300000000000000},
	"crc-64-ms": {Params: Params{Width: 64, Poly: 0x259C84CBA6426349, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x75D4B74F024ECEEA, Residue: 0x0000000000000000},
	"crc-64-nvme": {Params: Params{Width: 64, Poly: 0xAD93D23594C93659, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFFFFFFFFFF}, Check: 0xAE8B14860A799888, Residue: 0xF310303B2B6F6E42},
	"crc-64-redis": {Params: Params{Width: 64, Poly: 0xAD93D23594C935A9, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0xE9C6D914C4B8D9CA, Residue: 0x0000000000000000},
	"crc-64-we": {Params: Params{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFFFFFFFFFF}, Check: 0x62EC59E3F1A4F00A, Residue: 0xFCACBEBD5931A992},
	"crc-64-xz": {Params: Params{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFFFFFFFFFF}, Check: 0x995DC9BBDF1939FA, Residue: 0x49958C9ABD7D353F},
	"crc-7-mmc": {Params: Params{Width: 7, Poly: 0x0000000000000009, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000075, Residue: 0x0000000000000000},
	"crc-7-rohc": {Params: Params{Width: 7, Poly: 0x000000000000004F, Init: 0x000000000000007F, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000053, Residue: 0x0000000000000000},
	"crc-7-umts": {Params: Params{Width: 7, Poly: 0x0000000000000045, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000061, Residue: 0x0000000000000000},
	"crc-8-autosar": {Params: Params{Width: 8, Poly: 0x000000000000002F, Init: 0x00000000000000FF, RefIn: false, RefOut: false, XorOut: 0x00000000000000FF}, Check: 0x00000000000000DF, Residue: 0x0000000000000042},
	"crc-8-bluetooth": {Params: Params{Width: 8, Poly: 0x00000000000000A7, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000026, Residue: 0x0000000000000000},
	"crc-8-cdma2000": {Params: Params{Width: 8, Poly: 0x000000000000009B, Init: 0x00000000000000FF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000000DA, Residue: 0x0000000000000000},
	"crc-8-darc": {Params: Params{Width: 8, Poly: 0x0000000000000039, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000015, Residue: 0x0000000000000000},
	"crc-8-dvb-s2": {Params: Params{Width: 8, Poly: 0x00000000000000D5, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000000BC, Residue: 0x0000000000000000},
	"crc-8-gsm-a": {Params: Params{Width: 8, Poly: 0x000000000000001D, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000037, Residue: 0x0000000000000000},
	"crc-8-gsm-b": {Params: Params{Width: 8, Poly: 0x0000000000000049, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x00000000000000FF}, Check: 0x0000000000000094, Residue: 0x0000000000000053},
	"crc-8-hitag": {Params: Params{Width: 8, Poly: 0x000000000000001D, Init: 0x00000000000000FF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000000B4, Residue: 0x0000000000000000},
	"crc-8-i-432-1": {Params: Params{Width: 8, Poly: 0x0000000000000007, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000055}, Check: 0x00000000000000A1, Residue: 0x00000000000000AC},
	"crc-8-i-code": {Params: Params{Width: 8, Poly: 0x000000000000001D, Init: 0x00000000000000FD, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000007E, Residue: 0x0000000000000000},
	"crc-8-lte": {Params: Params{Width: 8, Poly: 0x000000000000009B, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000000EA, Residue: 0x0000000000000000},
	"crc-8-maxim-dow": {Params: Params{Width: 8, Poly: 0x0000000000000031, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x00000000000000A1, Residue: 0x0000000000000000},
	"crc-8-mifare-mad": {Params: Params{Width: 8, Poly: 0x000000000000001D, Init: 0x00000000000000C7, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x0000000000000099, Residue: 0x0000000000000000},
	"crc-8-nrsc-5": {Params: Params{Width: 8, Poly: 0x0000000000000031, Init: 0x00000000000000FF, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000000F7, Residue: 0x0000000000000000},
	"crc-8-opensafety": {Params: Params{Width: 8, Poly: 0x000000000000002F, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x000000000000003E, Residue: 0x0000000000000000},
	"crc-8-rohc": {Params: Params{Width: 8, Poly: 0x0000000000000007, Init: 0x00000000000000FF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x00000000000000D0, Residue: 0x0000000000000000},
	"crc-8-sae-j1850": {Params: Params{Width: 8, Poly: 0x000000000000001D, Init: 0x00000000000000FF, RefIn: false, RefOut: false, XorOut: 0x00000000000000FF}, Check: 0x000000000000004B, Residue: 0x00000000000000C4},
	"crc-8-smbus": {Params: Params{Width: 8, Poly: 0x0000000000000007, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}, Check: 0x00000000000000F4, Residue: 0x0000000000000000},
	"crc-8-tech-3250": {Params: Params{Width: 8, Poly: 0x000000000000001D, Init: 0x00000000000000FF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000097, Residue: 0x0000000000000000},
	"crc-8-wcdma": {Params: Params{Width: 8, Poly: 0x000000000000009B, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}, Check: 0x0000000000000025, Residue: 0x0000000000000000},
}

var aliasTable = map[string]string{
	"arc": "crc-16-arc",
	"b-crc-32": "crc-32-bzip2",
	"cksum": "crc-32-cksum",
	"crc-10": "crc-10-atm",
	"crc-10-atm": "crc-10-atm",
	"crc-10-cdma2000": "crc-10-cdma2000",
	"crc-10-gsm": "crc-10-gsm",
	"crc-10-i-610": "crc-10-atm",
	"crc-11": "crc-11-flexray",
	"crc-11-flexray": "crc-11-flexray",
	"crc-11-umts": "crc-11-umts",
	"crc-12-3gpp": "crc-12-umts",
	"crc-12-cdma2000": "crc-12-cdma2000",
	"crc-12-dect": "crc-12-dect",
	"crc-12-gsm": "crc-12-gsm",
	"crc-12-umts": "crc-12-umts",
	"crc-13-bbc": "crc-13-bbc",
	"crc-14-darc": "crc-14-darc",
	"crc-14-gsm": "crc-14-gsm",
	"crc-15": "crc-15-can",
	"crc-15-can": "crc-15-can",
	"crc-15-mpt1327": "crc-15-mpt1327",
	"crc-16": "crc-16-arc",
	"crc-16-acorn": "crc-16-xmodem",
	"crc-16-arc": "crc-16-arc",
	"crc-16-aug-ccitt": "crc-16-spi-fujitsu",
	"crc-16-autosar": "crc-16-ibm-3740",
	"crc-16-bluetooth": "crc-16-kermit",
	"crc-16-buypass": "crc-16-umts",
	"crc-16-ccitt": "crc-16-kermit",
	"crc-16-ccitt-false": "crc-16-ibm-3740",
	"crc-16-ccitt-true": "crc-16-kermit",
	"crc-16-cdma2000": "crc-16-cdma2000",
	"crc-16-cms": "crc-16-cms",
	"crc-16-darc": "crc-16-genibus",
	"crc-16-dds-110": "crc-16-dds-110",
	"crc-16-dect-r": "crc-16-dect-r",
	"crc-16-dect-x": "crc-16-dect-x",
	"crc-16-dnp": "crc-16-dnp",
	"crc-16-en-13757": "crc-16-en-13757",
	"crc-16-epc": "crc-16-genibus",
	"crc-16-epc-c1g2": "crc-16-genibus",
	"crc-16-genibus": "crc-16-genibus",
	"crc-16-gsm": "crc-16-gsm",
	"crc-16-i-code": "crc-16-genibus",
	"crc-16-ibm-3740": "crc-16-ibm-3740",
	"crc-16-ibm-sdlc": "crc-16-ibm-sdlc",
	"crc-16-iec-61158-2": "crc-16-profibus",
	"crc-16-iso-hdlc": "crc-16-ibm-sdlc",
	"crc-16-iso-iec-14443-3-a": "crc-16-iso-iec-14443-3-a",
	"crc-16-iso-iec-14443-3-b": "crc-16-ibm-sdlc",
	"crc-16-kermit": "crc-16-kermit",
	"crc-16-lha": "crc-16-arc",
	"crc-16-lj1200": "crc-16-lj1200",
	"crc-16-lte": "crc-16-xmodem",
	"crc-16-m17": "crc-16-m17",
	"crc-16-maxim": "crc-16-maxim-dow",
	"crc-16-maxim-dow": "crc-16-maxim-dow",
	"crc-16-mcrf4xx": "crc-16-mcrf4xx",
	"crc-16-modbus": "crc-16-modbus",
	"crc-16-nrsc-5": "crc-16-nrsc-5",
	"crc-16-opensafety-a": "crc-16-opensafety-a",
	"crc-16-opensafety-b": "crc-16-opensafety-b",
	"crc-16-profibus": "crc-16-profibus",
	"crc-16-riello": "crc-16-riello",
	"crc-16-spi-fujitsu": "crc-16-spi-fujitsu",
	"crc-16-t10-dif": "crc-16-t10-dif",
	"crc-16-teledisk": "crc-16-teledisk",
	"crc-16-tms37157": "crc-16-tms37157",
	"crc-16-umts": "crc-16-umts",
	"crc-16-usb": "crc-16-usb",
	"crc-16-v-41-lsb": "crc-16-kermit",
	"crc-16-v-41-msb": "crc-16-xmodem",
	"crc-16-verifone": "crc-16-umts",
	"crc-16-x-25": "crc-16-ibm-sdlc",
	"crc-16-xmodem": "crc-16-xmodem",
	"crc-17-can-fd": "crc-17-can-fd",
	"crc-21-can-fd": "crc-21-can-fd",
	"crc-24": "crc-24-openpgp",
	"crc-24-ble": "crc-24-ble",
	"crc-24-flexray-a": "crc-24-flexray-a",
	"crc-24-flexray-b": "crc-24-flexray-b",
	"crc-24-interlaken": "crc-24-interlaken",
	"crc-24-lte-a": "crc-24-lte-a",
	"crc-24-lte-b": "crc-24-lte-b",
	"crc-24-openpgp": "crc-24-openpgp",
	"crc-24-os-9": "crc-24-os-9",
	"crc-3-gsm": "crc-3-gsm",
	"crc-3-rohc": "crc-3-rohc",
	"crc-30-cdma": "crc-30-cdma",
	"crc-31-philips": "crc-31-philips",
	"crc-32": "crc-32-iso-hdlc",
	"crc-32-aal5": "crc-32-bzip2",
	"crc-32-adccp": "crc-32-iso-hdlc",
	"crc-32-aixm": "crc-32-aixm",
	"crc-32-autosar": "crc-32-autosar",
	"crc-32-base91-c": "crc-32-iscsi",
	"crc-32-base91-d": "crc-32-base91-d",
	"crc-32-bzip2": "crc-32-bzip2",
	"crc-32-castagnoli": "crc-32-iscsi",
	"crc-32-cd-rom-edc": "crc-32-cd-rom-edc",
	"crc-32-cksum": "crc-32-cksum",
	"crc-32-dect-b": "crc-32-bzip2",
	"crc-32-interlaken": "crc-32-iscsi",
	"crc-32-iscsi": "crc-32-iscsi",
	"crc-32-iso-hdlc": "crc-32-iso-hdlc",
	"crc-32-jamcrc": "crc-32-jamcrc",
	"crc-32-mef": "crc-32-mef",
	"crc-32-mpeg-2": "crc-32-mpeg-2",
	"crc-32-nvme": "crc-32-iscsi",
	"crc-32-posix": "crc-32-cksum",
	"crc-32-v-42": "crc-32-iso-hdlc",
	"crc-32-xfer": "crc-32-xfer",
	"crc-32-xz": "crc-32-iso-hdlc",
	"crc-32c": "crc-32-iscsi",
	"crc-32d": "crc-32-base91-d",
	"crc-32q": "crc-32-aixm",
	"crc-4-g-704": "crc-4-g-704",
	"crc-4-interlaken": "crc-4-interlaken",
	"crc-4-itu": "crc-4-g-704",
	"crc-40-gsm": "crc-40-gsm",
	"crc-5-epc": "crc-5-epc-c1g2",
	"crc-5-epc-c1g2": "crc-5-epc-c1g2",
	"crc-5-g-704": "crc-5-g-704",
	"crc-5-itu": "crc-5-g-704",
	"crc-5-usb": "crc-5-usb",
	"crc-6-cdma2000-a": "crc-6-cdma2000-a",
	"crc-6-cdma2000-b": "crc-6-cdma2000-b",
	"crc-6-darc": "crc-6-darc",
	"crc-6-g-704": "crc-6-g-704",
	"crc-6-gsm": "crc-6-gsm",
	"crc-6-itu": "crc-6-g-704",
	"crc-64": "crc-64-ecma-182",
	"crc-64-ecma-182": "crc-64-ecma-182",
	"crc-64-go-ecma": "crc-64-xz",
	"crc-64-go-iso": "crc-64-go-iso",
	"crc-64-ms": "crc-64-ms",
	"crc-64-nvme": "crc-64-nvme",
	"crc-64-redis": "crc-64-redis",
	"crc-64-we": "crc-64-we",
	"crc-64-xz": "crc-64-xz",
	"crc-7": "crc-7-mmc",
	"crc-7-mmc": "crc-7-mmc",
	"crc-7-rohc": "crc-7-rohc",
	"crc-7-umts": "crc-7-umts",
	"crc-8": "crc-8-smbus",
	"crc-8-aes": "crc-8-tech-3250",
	"crc-8-autosar": "crc-8-autosar",
	"crc-8-bluetooth": "crc-8-bluetooth",
	"crc-8-cdma2000": "crc-8-cdma2000",
	"crc-8-darc": "crc-8-darc",
	"crc-8-dvb-s2": "crc-8-dvb-s2",
	"crc-8-ebu": "crc-8-tech-3250",
	"crc-8-gsm-a": "crc-8-gsm-a",
	"crc-8-gsm-b": "crc-8-gsm-b",
	"crc-8-hitag": "crc-8-hitag",
	"crc-8-i-432-1": "crc-8-i-432-1",
	"crc-8-i-code": "crc-8-i-code",
	"crc-8-itu": "crc-8-i-432-1",
	"crc-8-lte": "crc-8-lte",
	"crc-8-maxim": "crc-8-maxim-dow",
	"crc-8-maxim-dow": "crc-8-maxim-dow",
	"crc-8-mifare-mad": "crc-8-mifare-mad",
	"crc-8-nrsc-5": "crc-8-nrsc-5",
	"crc-8-opensafety": "crc-8-opensafety",
	"crc-8-rohc": "crc-8-rohc",
	"crc-8-sae-j1850": "crc-8-sae-j1850",
	"crc-8-smbus": "crc-8-smbus",
	"crc-8-tech-3250": "crc-8-tech-3250",
	"crc-8-wcdma": "crc-8-wcdma",
	"crc-a": "crc-16-iso-iec-14443-3-a",
	"crc-b": "crc-16-ibm-sdlc",
	"crc-ccitt": "crc-16-kermit",
	"crc-ibm": "crc-16-arc",
	"dow-crc": "crc-8-maxim-dow",
	"jamcrc": "crc-32-jamcrc",
	"kermit": "crc-16-kermit",
	"modbus": "crc-16-modbus",
	"pkzip": "crc-32-iso-hdlc",
	"r-crc-16": "crc-16-dect-r",
	"x-25": "crc-16-ibm-sdlc",
	"x-crc-12": "crc-12-dect",
	"x-crc-16": "crc-16-dect-x",
	"xfer": "crc-32-xfer",
	"xmodem": "crc-16-xmodem",
	"zmodem": "crc-16-xmodem",
}

// Resolve looks up name (case-insensitively) in the alias table and
// returns the canonical Template it points to. Every canonical name
// aliases to itself.
func Resolve(name string) (Template, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	canon, ok := aliasTable[key]
	if !ok {
		return Template{}, newErr("resolve", KindNotFound, "unknown CRC template %q", name)
	}
	tpl, ok := templateTable[canon]
	if !ok {
		// Unreachable unless aliasTable and templateTable disagree.
		return Template{}, newErr("resolve", KindNotFound, "alias %q points at unknown template %q", name, canon)
	}
	return tpl, nil
}

// TemplatesAvailable returns, for every known alias, the computational
// (non-check/residue) parameters of the template it resolves to. The
// returned map is a fresh copy on every call so callers can't mutate
// the catalogue through it.
func TemplatesAvailable() map[string]Params {
	out := make(map[string]Params, len(aliasTable))
	for alias, canon := range aliasTable {
		out[alias] = templateTable[canon].Params
	}
	return out
}

// defaultTemplateName is used by New when neither a name nor an
// explicit width+poly pair is given.
const defaultTemplateName = "crc-32"
